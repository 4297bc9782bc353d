package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/pomodoro/internal/models"
)

func newTestStorage() (*Storage, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	return New(clock), clock
}

func TestRecordFillsDefaults(t *testing.T) {
	store, clock := newTestStorage()

	recorded := store.Record(models.Interval{Mode: "pomodoro", PlannedMinutes: 25})

	_, err := uuid.Parse(recorded.ID)
	require.NoError(t, err)
	assert.Equal(t, clock.Now(), recorded.EndTime)
	assert.Equal(t, "2026-03-14", recorded.Date)
	assert.Equal(t, 1, recorded.Sequence)

	second := store.Record(models.Interval{Mode: "short", PlannedMinutes: 5})
	assert.Equal(t, 2, second.Sequence)
	assert.NotEqual(t, recorded.ID, second.ID)
	assert.Len(t, store.GetAllIntervals(), 2)
}

func TestGetAllIntervalsReturnsCopy(t *testing.T) {
	store, _ := newTestStorage()
	store.Record(models.Interval{Mode: "pomodoro", PlannedMinutes: 25})

	all := store.GetAllIntervals()
	all[0].Mode = "long"

	assert.Equal(t, "pomodoro", store.GetAllIntervals()[0].Mode)
}

func TestDayStats(t *testing.T) {
	store, clock := newTestStorage()
	store.Record(models.Interval{Mode: "pomodoro", PlannedMinutes: 25})
	store.Record(models.Interval{Mode: "short", PlannedMinutes: 5})
	store.Record(models.Interval{Mode: "pomodoro", PlannedMinutes: 25})
	store.Record(models.Interval{Mode: "long", PlannedMinutes: 15})

	clock.Advance(24 * time.Hour)
	store.Record(models.Interval{Mode: "pomodoro", PlannedMinutes: 50})

	yesterday := store.GetDayStats("2026-03-14")
	assert.Equal(t, 2, yesterday.PomodoroCount)
	assert.Equal(t, 50, yesterday.FocusMinutes)
	assert.Equal(t, 2, yesterday.BreakCount)
	assert.Equal(t, 20, yesterday.BreakMinutes)
	assert.Len(t, yesterday.Intervals, 4)

	today := store.GetTodayStats()
	assert.Equal(t, "2026-03-15", today.Date)
	assert.Equal(t, 1, today.PomodoroCount)
	assert.Equal(t, 50, today.FocusMinutes)
}

func TestReport(t *testing.T) {
	store, _ := newTestStorage()
	assert.Contains(t, store.Report(), "No intervals finished yet.")

	store.Record(models.Interval{Mode: "pomodoro", PlannedMinutes: 25})
	store.Record(models.Interval{Mode: "pomodoro", PlannedMinutes: 45})
	store.Record(models.Interval{Mode: "long", PlannedMinutes: 15})

	report := store.Report()
	assert.Contains(t, report, "Pomodoros: 2")
	assert.Contains(t, report, "Focus Time: 1h 10m")
	assert.Contains(t, report, "Breaks: 1 (15m)")
	assert.Contains(t, report, "Average Pomodoro: 35 minutes")
	assert.Contains(t, report, "Long")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h 0m", FormatMinutes(60))
	assert.Equal(t, "2h 5m", FormatMinutes(125))
}

func TestElapsed(t *testing.T) {
	store, clock := newTestStorage()
	interval := store.Record(models.Interval{Mode: "pomodoro", PlannedMinutes: 25})

	clock.Advance(3 * time.Minute)

	assert.Equal(t, 3*time.Minute, store.Elapsed(interval))
}
