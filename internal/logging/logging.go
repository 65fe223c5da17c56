// Package logging sets up the zerolog logger of the command line tool.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level and the output format of the logger.
type Config struct {
	Level  string // zerolog level name, info when empty
	Format string // "text" for console output, JSON otherwise
}

// Setup creates a zerolog logger writing to w according to cfg.
func Setup(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	out := w
	if strings.EqualFold(cfg.Format, "text") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).With().Timestamp().Logger().Level(level), nil
}
