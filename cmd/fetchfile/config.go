package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/picatz/fetchfile"
)

// config is read from the environment.
type config struct {
	// Format is used when neither a flag nor the file extension names one.
	Format string `env:"FETCHFILE_FORMAT"`
	// Style is the glamour style used to render documents on a terminal.
	Style string `env:"FETCHFILE_STYLE" envDefault:"dark"`
	// LogLevel sets the level of diagnostics written to stderr.
	LogLevel string `env:"FETCHFILE_LOG_LEVEL" envDefault:"warn"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func (c config) logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid FETCHFILE_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// format picks the format of path: the flag value if set, then the file
// extension, then FETCHFILE_FORMAT.
func (c config) format(flag, path string) (fetchfile.Format, error) {
	if flag != "" {
		return fetchfile.ParseFormat(flag)
	}
	if f, ok := fetchfile.FormatFromPath(path); ok {
		return f, nil
	}
	if c.Format != "" {
		return fetchfile.ParseFormat(c.Format)
	}
	return "", fmt.Errorf("cannot tell the format of %q from its extension, use --format or FETCHFILE_FORMAT", path)
}
