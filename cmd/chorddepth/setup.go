package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/oisee/chorddepth/pkg/config"
)

// options are the flags shared by every command
type options struct {
	configPath string
	logLevel   string
	logFile    string
	tuning     string
	center     string
	watch      string
}

func (o *options) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&o.logFile, "log-file", "", "Write logs to this file (default: discard)")
	flags.StringVarP(&o.tuning, "tuning", "t", "", "Tuning name from the config")
	flags.StringVar(&o.center, "center", "", "Tonal center note (depth 0)")
}

// environment is the resolved config and logger for one command run
type environment struct {
	Config *config.Config
	Logger *slog.Logger

	logOut io.Closer
}

// Close releases the log file, if any
func (e *environment) Close() error {
	if e.logOut == nil {
		return nil
	}
	return e.logOut.Close()
}

// setup loads the layered config, applies flag overrides and opens the log
func setup(opts *options) (*environment, error) {
	boot, closer, err := newLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewLoader(boot).Load(opts.configPath)
	if err != nil {
		closeQuietly(closer)
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.tuning != "" {
		cfg.Tuning = opts.tuning
	}
	if opts.center != "" {
		cfg.Center = opts.center
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		closeQuietly(closer)
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	env := &environment{Config: cfg, Logger: boot, logOut: closer}

	// Config may name a log file or level the flags did not
	if cfg.Log.File != opts.logFile || cfg.Log.Level != opts.logLevel {
		logger, logCloser, err := newLogger(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			env.Close()
			return nil, err
		}
		closeQuietly(closer)
		env.Logger = logger
		env.logOut = logCloser
	}

	slog.SetDefault(env.Logger)
	return env, nil
}

// newLogger builds a text logger writing to path; an empty path discards output.
// The interactive view owns the terminal, so logs never go to stderr.
func newLogger(path, level string) (*slog.Logger, io.Closer, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
