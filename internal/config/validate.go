package config

import (
	"errors"
	"fmt"

	"github.com/adibhanna/pomodoro/internal/models"
)

// ErrInvalidConfig is returned for configurations the timer cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 180
	MinInterval        = 1
	MaxInterval        = 24
	MinVolume          = 0
	MaxVolume          = 100
)

// Validate rejects out-of-range values. Every offending field is reported.
func Validate(cfg models.Config) error {
	var problems []error

	durations := []struct {
		name  string
		value int
	}{
		{"pomodoro duration", cfg.PomodoroMinutes},
		{"short break duration", cfg.ShortBreakMinutes},
		{"long break duration", cfg.LongBreakMinutes},
	}
	for _, d := range durations {
		if d.value < MinDurationMinutes || d.value > MaxDurationMinutes {
			problems = append(problems, fmt.Errorf("%s must be between %d-%d minutes, got %d",
				d.name, MinDurationMinutes, MaxDurationMinutes, d.value))
		}
	}

	if cfg.LongBreakInterval < MinInterval || cfg.LongBreakInterval > MaxInterval {
		problems = append(problems, fmt.Errorf("long break interval must be between %d-%d pomodoros, got %d",
			MinInterval, MaxInterval, cfg.LongBreakInterval))
	}

	if cfg.AlarmVolume < MinVolume || cfg.AlarmVolume > MaxVolume {
		problems = append(problems, fmt.Errorf("alarm volume must be between %d-%d, got %d",
			MinVolume, MaxVolume, cfg.AlarmVolume))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
