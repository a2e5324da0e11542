// Package logging builds the zerolog loggers used across the application.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cebix/library/internal/config"
)

// New returns a logger writing to out. Format "console" produces
// human-readable lines, anything else produces JSON.
func New(level, format string, out io.Writer) zerolog.Logger {
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Init installs the configured logger as the global logger and returns it.
func Init(cfg config.Logging) zerolog.Logger {
	logger := New(cfg.Level, cfg.Format, os.Stderr)
	log.Logger = logger
	return logger
}
