// Package logger provides structured logging with context extraction and Sentry integration.
//
// This package extends the standard library's log/slog with automatic
// context-based attribute injection and optional Sentry error reporting.
// It carries the app's domain extractors so every log line produced while
// handling a user's journal or running a background task is attributed
// without per-call boilerplate.
//
// # Basic Usage
//
// Create a logger with the built-in extractors:
//
//	log := logger.New(logger.ExtractUserID, logger.ExtractJournalID)
//
//	ctx := logger.WithUserID(context.Background(), "usr_01H...")
//	log.InfoContext(ctx, "entry created", slog.String("entry_id", entryID))
//	// Output: {"level":"INFO","msg":"entry created","entry_id":"...","user_id":"usr_01H..."}
//
// NewFromConfig honors LOG_LEVEL and LOG_FORMAT from the environment:
//
//	cfg := logger.Config{Level: "debug", Format: "text"}
//	log := logger.NewFromConfig(cfg, logger.ExtractUserID)
//
// # Sentry Integration
//
// For production error tracking, use NewWithSentry:
//
//	log := logger.NewWithSentry(logCfg, logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, logger.ExtractUserID, logger.ExtractTask)
//
// Errors create Issues in Sentry; warnings are stored alongside for
// context. An empty DSN falls back to stdout-only logging, so the same
// code path works in development without a Sentry account.
//
// # Context Extractors
//
// A ContextExtractor pulls a log attribute out of a context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call, so request-scoped values stay
// fresh. Return false to skip the attribute for that record. The
// package ships extractors for the IDs the app threads through its
// contexts (ExtractUserID, ExtractJournalID, ExtractTask), and custom
// ones plug in the same way.
//
// # Handler Decoration
//
// LogHandlerDecorator wraps any slog.Handler to add extraction:
//
//	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	log := slog.New(logger.NewLogHandlerDecorator(jsonHandler, extractors...))
//
// An internal multi-handler fans records out to stdout and Sentry at
// the same time, and NewNope returns a discard-everything logger for
// tests and optional dependencies.
package logger
