package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/pomodoro/internal/config"
	"github.com/adibhanna/pomodoro/internal/models"
)

type fakeSaver struct {
	saved []models.Config
	err   error
}

func (s *fakeSaver) UpdateConfig(cfg models.Config) error {
	if s.err != nil {
		return s.err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	s.saved = append(s.saved, cfg)
	return nil
}

func send(m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var tab = tea.KeyMsg{Type: tea.KeyTab}

func TestSaveForwardsEditedConfig(t *testing.T) {
	saver := &fakeSaver{}
	m := New(models.DefaultConfig(), saver)

	m.inputs[fieldPomodoro].SetValue("50")
	m.inputs[fieldInterval].SetValue("2")

	m, cmd := send(m, runes("s"))

	require.Len(t, saver.saved, 1)
	assert.Equal(t, 50, saver.saved[0].PomodoroMinutes)
	assert.Equal(t, 2, saver.saved[0].LongBreakInterval)
	assert.Equal(t, 5, saver.saved[0].ShortBreakMinutes)
	assert.True(t, m.Saved())
	assert.NotNil(t, cmd)
}

func TestSaveShowsValidationError(t *testing.T) {
	saver := &fakeSaver{}
	m := New(models.DefaultConfig(), saver)

	m.inputs[fieldShortBreak].SetValue("0")
	m, _ = send(m, runes("s"))

	assert.Empty(t, saver.saved)
	assert.False(t, m.Saved())
	assert.Contains(t, m.errorMsg, "short break duration")
}

func TestSaveRequiresEveryField(t *testing.T) {
	saver := &fakeSaver{err: errors.New("unreachable")}
	m := New(models.DefaultConfig(), saver)

	m.inputs[fieldLongBreak].SetValue("")
	m, _ = send(m, runes("s"))

	assert.Equal(t, "long break duration is required", m.errorMsg)
}

func TestTogglesAndVolume(t *testing.T) {
	m := New(models.DefaultConfig(), &fakeSaver{})

	// Move to the auto start breaks toggle.
	m, _ = send(m, tab, tab, tab, tab)
	require.Equal(t, fieldAutoStartBreaks, m.focusIndex)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.Config().AutoStartBreaks)

	m, _ = send(m, tab, tab)
	require.Equal(t, fieldVolume, m.focusIndex)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 99, m.Config().AlarmVolume)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Equal(t, 89, m.Config().AlarmVolume)
	m, _ = send(m, runes("L"), runes("L"))
	assert.Equal(t, 100, m.Config().AlarmVolume)

	m, _ = send(m, tab)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Config().DarkModeWhenRunning)
}

func TestFocusWraps(t *testing.T) {
	m := New(models.DefaultConfig(), &fakeSaver{})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldDarkMode, m.focusIndex)
	m, _ = send(m, tab)
	assert.Equal(t, fieldPomodoro, m.focusIndex)
}

func TestDefaultsRestoreForm(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.PomodoroMinutes = 40
	cfg.AlarmVolume = 10
	m := New(cfg, &fakeSaver{})

	m, _ = send(m, runes("d"))

	assert.Equal(t, models.DefaultConfig(), m.Config())
	assert.Equal(t, "25", m.inputs[fieldPomodoro].Value())
}
