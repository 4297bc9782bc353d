package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/adibhanna/pomodoro/internal/models"
)

// Storage keeps the log of finished intervals for the lifetime of the process.
type Storage struct {
	mu        sync.RWMutex
	clock     clockwork.Clock
	intervals []models.Interval
}

func New(clock clockwork.Clock) *Storage {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Storage{clock: clock}
}

// Record appends an interval, filling in ID, end time, date and sequence
// when they are missing.
func (s *Storage) Record(interval models.Interval) models.Interval {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interval.ID == "" {
		interval.ID = uuid.New().String()
	}
	if interval.EndTime.IsZero() {
		interval.EndTime = s.clock.Now()
	}
	if interval.Date == "" {
		interval.Date = interval.EndTime.Format("2006-01-02")
	}
	interval.Sequence = len(s.intervals) + 1

	s.intervals = append(s.intervals, interval)
	return interval
}

func (s *Storage) GetAllIntervals() []models.Interval {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Interval(nil), s.intervals...)
}

func (s *Storage) GetIntervalsByDate(date string) []models.Interval {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var intervals []models.Interval
	for _, interval := range s.intervals {
		if interval.Date == date {
			intervals = append(intervals, interval)
		}
	}
	return intervals
}

func (s *Storage) Today() string {
	return s.clock.Now().Format("2006-01-02")
}

func (s *Storage) GetDayStats(date string) models.DayStats {
	stats := models.DayStats{
		Date:      date,
		Intervals: s.GetIntervalsByDate(date),
	}

	for _, interval := range stats.Intervals {
		if interval.IsPomodoro() {
			stats.PomodoroCount++
			stats.FocusMinutes += interval.PlannedMinutes
		} else {
			stats.BreakCount++
			stats.BreakMinutes += interval.PlannedMinutes
		}
	}

	return stats
}

func (s *Storage) GetTodayStats() models.DayStats {
	return s.GetDayStats(s.Today())
}

// Report renders every recorded interval as a plain text summary.
func (s *Storage) Report() string {
	all := s.GetAllIntervals()
	now := s.clock.Now()

	var report strings.Builder
	report.WriteString("Pomodoro - Session Report\n")
	fmt.Fprintf(&report, "Generated: %s\n", now.Format("January 2, 2006 3:04 PM"))
	report.WriteString("=====================================\n\n")

	pomodoros, focusMinutes, breaks, breakMinutes := 0, 0, 0, 0
	for _, interval := range all {
		if interval.IsPomodoro() {
			pomodoros++
			focusMinutes += interval.PlannedMinutes
		} else {
			breaks++
			breakMinutes += interval.PlannedMinutes
		}
	}

	report.WriteString("OVERALL\n")
	report.WriteString("-------\n")
	fmt.Fprintf(&report, "Pomodoros: %d\n", pomodoros)
	fmt.Fprintf(&report, "Focus Time: %s\n", FormatMinutes(focusMinutes))
	fmt.Fprintf(&report, "Breaks: %d (%s)\n", breaks, FormatMinutes(breakMinutes))
	if pomodoros > 0 {
		fmt.Fprintf(&report, "Average Pomodoro: %d minutes\n", focusMinutes/pomodoros)
	}
	report.WriteString("\n")

	if len(all) == 0 {
		report.WriteString("No intervals finished yet.\n")
		return report.String()
	}

	report.WriteString("INTERVALS\n")
	report.WriteString("---------\n")
	for _, interval := range all {
		fmt.Fprintf(&report, "  %2d. %-8s %3d min  finished %s\n",
			interval.Sequence,
			ModeLabel(interval.Mode),
			interval.PlannedMinutes,
			interval.EndTime.Format("3:04 PM"),
		)
	}

	return report.String()
}

// FormatMinutes renders a minute count as "1h 5m" or "45m".
func FormatMinutes(total int) string {
	hours := total / 60
	mins := total % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// ModeLabel maps a mode key to its display label.
func ModeLabel(key string) string {
	switch key {
	case "pomodoro":
		return "Pomodoro"
	case "short":
		return "Short"
	case "long":
		return "Long"
	}
	return key
}

// Elapsed returns how long ago the interval finished.
func (s *Storage) Elapsed(interval models.Interval) time.Duration {
	return s.clock.Since(interval.EndTime)
}
