// Package logging builds the process-wide slog logger from settings.
package logging

import (
	"io"
	"log/slog"

	"github.com/younwookim/chasearena/internal/infrastructure/config"
)

// Setup creates a logger writing to w at the configured level and format,
// installs it as the default and returns it
func Setup(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var h slog.Handler
	opts := &slog.HandlerOptions{Level: Level(cfg.Level)}

	switch cfg.Format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// Level parses a level name. Unknown names fall back to info.
func Level(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
