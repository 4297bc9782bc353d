package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/adibhanna/pomodoro/internal/alarm"
	"github.com/adibhanna/pomodoro/internal/app"
	"github.com/adibhanna/pomodoro/internal/config"
	"github.com/adibhanna/pomodoro/internal/pomodoro"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path (default: search for pomodoro.yaml)"`
	EnvFile string `help:"Load environment variables from a .env file before reading configuration"`
	LogFile string `help:"Write logs to this file"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	Mute    bool   `help:"Disable the alarm sound"`

	Run struct {
		Mode      string `short:"m" help:"Mode to begin in (pomodoro, short, long)" default:"pomodoro"`
		Headless  bool   `help:"Print the countdown line by line instead of the terminal UI"`
		Start     bool   `help:"Start the countdown immediately"`
		ExportDir string `help:"Directory for exported session reports (default: ~/Downloads)"`
	} `cmd:"" default:"withargs" help:"Run the timer"`

	Show struct{} `cmd:"" name:"config" help:"Print the effective configuration as YAML"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("pomodoro"),
		kong.Description("A Pomodoro timer for the terminal."),
		kong.UsageOnError(),
	)

	if CLI.EnvFile != "" {
		if err := godotenv.Load(CLI.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "pomodoro: load env file: %v\n", err)
			os.Exit(1)
		}
	}

	// The terminal UI owns stdout, so it only logs when asked to.
	interactive := ctx.Command() == "run" && !CLI.Run.Headless
	logger, closeLog, err := newLogger(CLI.LogFile, interactive, CLI.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pomodoro: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "run":
		err = runTimer(logger)
	case "config":
		err = runShowConfig(os.Stdout)
	}
	closeLog()

	if err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		if interactive || CLI.LogFile != "" {
			fmt.Fprintf(os.Stderr, "pomodoro: %v\n", err)
		}
		os.Exit(1)
	}
}

func newLogger(path string, interactive, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch {
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(file, opts)), func() { _ = file.Close() }, nil
	case interactive:
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
	}
}

func runTimer(logger *slog.Logger) error {
	mode, err := pomodoro.ParseMode(CLI.Run.Mode)
	if err != nil {
		return err
	}

	loader := config.NewLoader(CLI.Config)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Info("Configuration loaded",
		"file", loader.ConfigFileUsed(),
		"pomodoro", cfg.PomodoroMinutes,
		"short_break", cfg.ShortBreakMinutes,
		"long_break", cfg.LongBreakMinutes,
		"interval", cfg.LongBreakInterval)

	store := config.NewStore(cfg)
	ctrl := app.New(app.Options{
		Store:  store,
		Player: newPlayer(CLI.Mute),
		Logger: logger,
	})
	defer ctrl.Close()

	loader.Watch(store, logger)

	if mode != pomodoro.Pomodoro {
		ctrl.SetMode(mode)
	}
	if CLI.Run.Start || CLI.Run.Headless {
		ctrl.Start()
	}

	if CLI.Run.Headless {
		sigCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return runHeadless(sigCtx, ctrl, os.Stdout)
	}
	return runTUI(ctrl, CLI.Run.ExportDir)
}

func newPlayer(mute bool) alarm.Player {
	if mute {
		return alarm.Muted{}
	}
	return alarm.Fallback(alarm.NewSpeaker(), alarm.NewBell(os.Stderr))
}

func runShowConfig(out io.Writer) error {
	loader := config.NewLoader(CLI.Config)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if file := loader.ConfigFileUsed(); file != "" {
		fmt.Fprintf(out, "# loaded from %s\n", file)
	}
	_, err = out.Write(data)
	return err
}
