package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/pomodoro/internal/models"
)

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, Validate(models.DefaultConfig()))
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := map[string]func(*models.Config){
		"zero pomodoro":     func(c *models.Config) { c.PomodoroMinutes = 0 },
		"negative short":    func(c *models.Config) { c.ShortBreakMinutes = -5 },
		"huge long":         func(c *models.Config) { c.LongBreakMinutes = 181 },
		"zero interval":     func(c *models.Config) { c.LongBreakInterval = 0 },
		"volume too loud":   func(c *models.Config) { c.AlarmVolume = 101 },
		"negative volume":   func(c *models.Config) { c.AlarmVolume = -1 },
		"interval too long": func(c *models.Config) { c.LongBreakInterval = 25 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := models.DefaultConfig()
			mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.PomodoroMinutes = 0
	cfg.AlarmVolume = 200

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pomodoro duration")
	assert.Contains(t, err.Error(), "alarm volume")
}

func TestValidateAcceptsBounds(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.PomodoroMinutes = MaxDurationMinutes
	cfg.ShortBreakMinutes = MinDurationMinutes
	cfg.LongBreakInterval = MinInterval
	cfg.AlarmVolume = MinVolume
	assert.NoError(t, Validate(cfg))
}

func TestStoreReplaceNotifies(t *testing.T) {
	store := NewStore(models.DefaultConfig())

	var calls []models.Config
	var previous []models.Config
	store.OnChange(func(old, current models.Config) {
		previous = append(previous, old)
		calls = append(calls, current)
	})

	next := models.DefaultConfig()
	next.PomodoroMinutes = 50
	require.NoError(t, store.Replace(next))

	assert.Equal(t, next, store.Get())
	require.Len(t, calls, 1)
	assert.Equal(t, next, calls[0])
	assert.Equal(t, models.DefaultConfig(), previous[0])

	// Same value again is not a change.
	require.NoError(t, store.Replace(next))
	assert.Len(t, calls, 1)
}

func TestStoreRejectsInvalidWrite(t *testing.T) {
	store := NewStore(models.DefaultConfig())
	notified := false
	store.OnChange(func(_, _ models.Config) { notified = true })

	bad := models.DefaultConfig()
	bad.LongBreakInterval = 0
	err := store.Replace(bad)

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, models.DefaultConfig(), store.Get())
	assert.False(t, notified)
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore(models.DefaultConfig())

	require.NoError(t, store.Update(func(c *models.Config) {
		c.AlarmVolume = 40
		c.AutoStartBreaks = true
	}))
	assert.Equal(t, 40, store.Get().AlarmVolume)
	assert.True(t, store.Get().AutoStartBreaks)

	err := store.Update(func(c *models.Config) { c.AlarmVolume = 140 })
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, 40, store.Get().AlarmVolume)
}

func TestStoreListenerSeesNewValue(t *testing.T) {
	store := NewStore(models.DefaultConfig())
	var seen int
	store.OnChange(func(_, _ models.Config) {
		seen = store.Get().ShortBreakMinutes
	})

	require.NoError(t, store.Update(func(c *models.Config) { c.ShortBreakMinutes = 7 }))
	assert.Equal(t, 7, seen)
}
