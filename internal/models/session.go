package models

import (
	"time"
)

// Interval is one countdown that ran to zero.
type Interval struct {
	ID             string    `json:"id"`
	Mode           string    `json:"mode"`            // pomodoro, short or long
	PlannedMinutes int       `json:"planned_minutes"` // configured duration when it finished
	EndTime        time.Time `json:"end_time"`
	Date           string    `json:"date"` // YYYY-MM-DD format
	Sequence       int       `json:"sequence"`
}

func (i Interval) IsPomodoro() bool {
	return i.Mode == "pomodoro"
}

type DayStats struct {
	Date          string     `json:"date"`
	PomodoroCount int        `json:"pomodoro_count"`
	BreakCount    int        `json:"break_count"`
	FocusMinutes  int        `json:"focus_minutes"`
	BreakMinutes  int        `json:"break_minutes"`
	Intervals     []Interval `json:"intervals"`
}
