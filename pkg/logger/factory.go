package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON-formatted logger at Info level with optional
// context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewFromConfig(Config{}, extractors...)
}

// NewFromConfig creates a logger honoring the configured level and
// output format.
func NewFromConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(stdoutHandler(cfg), extractors...))
}

func stdoutHandler(cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.NewJSONHandler(os.Stdout, opts)
}
