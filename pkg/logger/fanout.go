package logger

import (
	"context"
	"log/slog"
)

// fanoutHandler duplicates records across several handlers so stdout
// and Sentry can consume the same stream.
type fanoutHandler struct {
	targets []slog.Handler
}

func newFanoutHandler(targets ...slog.Handler) slog.Handler {
	return &fanoutHandler{targets: targets}
}

// Enabled reports whether any target would accept the level. Handle
// filters per target again, so a record enabled here still skips
// targets with a higher threshold.
func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, t := range h.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, t := range h.targets {
		if !t.Enabled(ctx, rec.Level) {
			continue
		}
		// Clone: targets may mutate the record's attr backing array.
		if err := t.Handle(ctx, rec.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.targets))
	for i, t := range h.targets {
		next[i] = t.WithAttrs(attrs)
	}
	return newFanoutHandler(next...)
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.targets))
	for i, t := range h.targets {
		next[i] = t.WithGroup(name)
	}
	return newFanoutHandler(next...)
}
