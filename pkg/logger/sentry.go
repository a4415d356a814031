package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry
	// (e.g. slog.LevelWarn for warnings and errors).
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes to both stdout and Sentry.
// An empty DSN falls back to stdout only, so local development needs no
// Sentry account. Context extractors apply to both destinations.
func NewWithSentry(cfg Config, sentryCfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := stdoutHandler(cfg)

	if sentryCfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sentryCfg.DSN,
		Environment: sentryCfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		// Degrade to stdout rather than failing startup.
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	// Errors create Issues; warnings (unless raised to error-only)
	// land in Sentry's log store for context and search.
	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sentryCfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	combined := newFanoutHandler(stdout, sentryHandler)

	return slog.New(NewLogHandlerDecorator(combined, extractors...))
}
