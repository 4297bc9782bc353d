package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/adibhanna/pomodoro/internal/models"
)

const EnvPrefix = "POMODORO"

// Loader reads the startup configuration from defaults, an optional YAML
// file and POMODORO_* environment variables, in increasing priority.
type Loader struct {
	v *viper.Viper
}

// NewLoader prepares a loader. An empty path searches for pomodoro.yaml in
// the working directory, $XDG_CONFIG_HOME/pomodoro and $HOME/.config/pomodoro.
func NewLoader(path string) *Loader {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pomodoro")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$XDG_CONFIG_HOME/pomodoro")
		v.AddConfigPath("$HOME/.config/pomodoro")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := models.DefaultConfig()
	v.SetDefault("pomodoro_minutes", defaults.PomodoroMinutes)
	v.SetDefault("short_break_minutes", defaults.ShortBreakMinutes)
	v.SetDefault("long_break_minutes", defaults.LongBreakMinutes)
	v.SetDefault("long_break_interval", defaults.LongBreakInterval)
	v.SetDefault("auto_start_breaks", defaults.AutoStartBreaks)
	v.SetDefault("auto_start_pomodoros", defaults.AutoStartPomodoros)
	v.SetDefault("alarm_volume", defaults.AlarmVolume)
	v.SetDefault("dark_mode_when_running", defaults.DarkModeWhenRunning)

	return &Loader{v: v}
}

// Load reads and validates the configuration. A missing config file is not
// an error unless the path was given explicitly.
func (l *Loader) Load() (models.Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return models.Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	return l.decode()
}

// ConfigFileUsed returns the file the configuration came from, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) decode() (models.Config, error) {
	var cfg models.Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return models.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return models.Config{}, err
	}
	return cfg, nil
}

// Watch pushes edits of the config file into store. It returns false when
// no file was loaded. Invalid edits are logged and dropped.
func (l *Loader) Watch(store *Store, logger *slog.Logger) bool {
	path := l.ConfigFileUsed()
	if path == "" {
		return false
	}

	l.v.OnConfigChange(func(event fsnotify.Event) {
		if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.decode()
		if err != nil {
			logger.Warn("Ignoring config file change", "file", event.Name, "error", err)
			return
		}
		if err := store.Replace(cfg); err != nil {
			logger.Warn("Failed to apply config file change", "file", event.Name, "error", err)
			return
		}
		logger.Info("Configuration reloaded", "file", event.Name)
	})
	l.v.WatchConfig()
	logger.Debug("Watching config file", "file", path)
	return true
}

// Load is shorthand for NewLoader(path).Load().
func Load(path string) (models.Config, error) {
	return NewLoader(path).Load()
}

// Marshal renders cfg as a YAML config file.
func Marshal(cfg models.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config yaml: %w", err)
	}
	return append([]byte("# pomodoro configuration\n"), data...), nil
}
