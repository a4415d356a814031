package notify

import (
	"time"

	"github.com/dmitrymomot/daybook/pkg/id"
)

// Type classifies a toast for presentation.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Toast is a single transient notification addressed to the UI.
//
// Key is optional. Toasts sharing a non-empty Key count as duplicates
// of each other for the length of the center's dedup window.
type Toast struct {
	ID        string    `json:"id"`
	Key       string    `json:"key,omitempty"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a toast of the given type with a fresh ULID.
func New(t Type, title, message string) Toast {
	return Toast{
		ID:        id.NewULID(),
		Type:      t,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// Info creates an informational toast.
func Info(title, message string) Toast { return New(TypeInfo, title, message) }

// Success creates a success toast.
func Success(title, message string) Toast { return New(TypeSuccess, title, message) }

// Warning creates a warning toast.
func Warning(title, message string) Toast { return New(TypeWarning, title, message) }

// Error creates an error toast.
func Error(title, message string) Toast { return New(TypeError, title, message) }

// WithKey returns a copy of the toast with the dedup key set.
func (t Toast) WithKey(key string) Toast {
	t.Key = key
	return t
}
