package journal

import (
	"time"

	"github.com/google/uuid"
)

// Journal is a named collection of entries owned by a single user.
type Journal struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entry is a single dated journal entry. Body holds sanitized HTML.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	JournalID uuid.UUID `json:"journal_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Mood      string    `json:"mood"`
	Tags      []string  `json:"tags"`
	EntryDate time.Time `json:"entry_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEntryParams carries the caller-supplied fields for CreateEntry.
type CreateEntryParams struct {
	JournalID uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Body      string
	Mood      string
	Tags      []string
	EntryDate time.Time
}

// UpdateEntryParams carries the full replacement state for UpdateEntry.
type UpdateEntryParams struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Body      string
	Mood      string
	Tags      []string
	EntryDate time.Time
}
