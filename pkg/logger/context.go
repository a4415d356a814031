package logger

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	journalIDKey
	taskKey
)

// WithUserID returns a context carrying the acting user's ID so log
// records emitted downstream are attributed to them.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// WithJournalID returns a context carrying the journal being operated on.
func WithJournalID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, journalIDKey, id)
}

// WithTask returns a context carrying the kind of the background task
// currently executing.
func WithTask(ctx context.Context, kind string) context.Context {
	return context.WithValue(ctx, taskKey, kind)
}

// ExtractUserID surfaces the user ID stored with WithUserID.
func ExtractUserID(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(userIDKey).(string); ok && id != "" {
		return slog.String("user_id", id), true
	}
	return slog.Attr{}, false
}

// ExtractJournalID surfaces the journal ID stored with WithJournalID.
func ExtractJournalID(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(journalIDKey).(string); ok && id != "" {
		return slog.String("journal_id", id), true
	}
	return slog.Attr{}, false
}

// ExtractTask surfaces the task kind stored with WithTask.
func ExtractTask(ctx context.Context) (slog.Attr, bool) {
	if kind, ok := ctx.Value(taskKey).(string); ok && kind != "" {
		return slog.String("task", kind), true
	}
	return slog.Attr{}, false
}
