package cms

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/daybook/pkg/icons"
)

// Post is a blog post. BodyHTML is sanitized before storage; templates
// may render it without further escaping.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	BodyHTML    string     `json:"body_html"`
	CoverURL    string     `json:"cover_url,omitempty"`
	CoverKey    string     `json:"-"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostParams carries the editable fields of a post. Body accepts raw
// HTML from the editor and is sanitized on write.
type PostParams struct {
	Title   string
	Excerpt string
	Body    string
}

// Section is an admin-editable block of the public site (hero, about,
// feature cards). Key identifies the block to the rendering layer.
type Section struct {
	ID        uuid.UUID  `json:"id"`
	Key       string     `json:"key"`
	Title     string     `json:"title"`
	BodyHTML  string     `json:"body_html"`
	Icon      icons.Icon `json:"icon"`
	Position  int        `json:"position"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SectionParams carries the editable fields of a section. Icon is the
// icon name as text; unknown names fall back to the default icon.
type SectionParams struct {
	Key      string
	Title    string
	Body     string
	Icon     string
	Position int
}

// Submission is a message sent through the public contact form. Ref is
// the reference code shown to the sender for follow-up.
type Submission struct {
	ID        uuid.UUID  `json:"id"`
	Ref       string     `json:"ref"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}
