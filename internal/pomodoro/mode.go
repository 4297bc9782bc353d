package pomodoro

import (
	"fmt"
	"strings"

	"github.com/adibhanna/pomodoro/internal/models"
)

// Mode is the current phase of the timer.
type Mode int

const (
	Pomodoro Mode = iota
	ShortBreak
	LongBreak
)

// Modes lists every mode in display order.
var Modes = []Mode{Pomodoro, ShortBreak, LongBreak}

// String returns the label shown to the user.
func (m Mode) String() string {
	switch m {
	case Pomodoro:
		return "Pomodoro"
	case ShortBreak:
		return "Short"
	case LongBreak:
		return "Long"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Key returns the lower-case identifier used in config, flags and the session log.
func (m Mode) Key() string {
	switch m {
	case Pomodoro:
		return "pomodoro"
	case ShortBreak:
		return "short"
	case LongBreak:
		return "long"
	}
	return ""
}

// IsBreak reports whether m is one of the break modes.
func (m Mode) IsBreak() bool {
	return m == ShortBreak || m == LongBreak
}

// ParseMode accepts a mode key or label, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pomodoro", "work":
		return Pomodoro, nil
	case "short", "short_break", "shortbreak":
		return ShortBreak, nil
	case "long", "long_break", "longbreak":
		return LongBreak, nil
	}
	return Pomodoro, fmt.Errorf("unknown mode %q", s)
}

// Minutes returns the configured duration of m.
func Minutes(cfg models.Config, m Mode) int {
	switch m {
	case ShortBreak:
		return cfg.ShortBreakMinutes
	case LongBreak:
		return cfg.LongBreakMinutes
	default:
		return cfg.PomodoroMinutes
	}
}

// Seconds returns the full countdown length of m.
func Seconds(cfg models.Config, m Mode) int {
	return Minutes(cfg, m) * 60
}
