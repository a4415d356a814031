package logger

import (
	"log/slog"
	"strings"
)

// Config controls the stdout log stream. Values load from the
// environment via caarlos0/env tags.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// SlogLevel maps the configured level name to a slog.Level.
// Unknown values fall back to Info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
