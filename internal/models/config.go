package models

type Config struct {
	PomodoroMinutes     int  `json:"pomodoro_minutes" yaml:"pomodoro_minutes" mapstructure:"pomodoro_minutes"`
	ShortBreakMinutes   int  `json:"short_break_minutes" yaml:"short_break_minutes" mapstructure:"short_break_minutes"`
	LongBreakMinutes    int  `json:"long_break_minutes" yaml:"long_break_minutes" mapstructure:"long_break_minutes"`
	LongBreakInterval   int  `json:"long_break_interval" yaml:"long_break_interval" mapstructure:"long_break_interval"` // Pomodoros before a long break
	AutoStartBreaks     bool `json:"auto_start_breaks" yaml:"auto_start_breaks" mapstructure:"auto_start_breaks"`
	AutoStartPomodoros  bool `json:"auto_start_pomodoros" yaml:"auto_start_pomodoros" mapstructure:"auto_start_pomodoros"`
	AlarmVolume         int  `json:"alarm_volume" yaml:"alarm_volume" mapstructure:"alarm_volume"` // 0-100
	DarkModeWhenRunning bool `json:"dark_mode_when_running" yaml:"dark_mode_when_running" mapstructure:"dark_mode_when_running"`
}

func DefaultConfig() Config {
	return Config{
		PomodoroMinutes:     25,
		ShortBreakMinutes:   5,
		LongBreakMinutes:    15,
		LongBreakInterval:   4,
		AutoStartBreaks:     false,
		AutoStartPomodoros:  false,
		AlarmVolume:         100,
		DarkModeWhenRunning: true,
	}
}

// SameTiming reports whether both configs produce identical countdowns.
func (c Config) SameTiming(other Config) bool {
	return c.PomodoroMinutes == other.PomodoroMinutes &&
		c.ShortBreakMinutes == other.ShortBreakMinutes &&
		c.LongBreakMinutes == other.LongBreakMinutes &&
		c.LongBreakInterval == other.LongBreakInterval
}
