package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that drops everything. Components accept it
// as their default so call sites never need nil checks around optional
// logging.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
