package mailer

import "fmt"

// Tags represents email tags/categories, either presence-only (value
// struct{}{}) or key-value pairs. Provider adapters convert them to
// whatever their API expects; presence-only tags become name="true"
// where a value is required.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers     map[string]string // custom headers
	Tags        Tags              // provider-specific tags/categories
	Subject     string
	HTML        string
	Text        string       // plain text alternative
	From        string       // override default sender (if provider allows)
	ReplyTo     string       // reply-to address
	To          []string     // at least one required
	CC          []string     // carbon copy recipients
	BCC         []string     // blind carbon copy recipients
	Attachments []Attachment // file attachments
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // display name for the attachment
	ContentType string // MIME type, e.g. "application/pdf"
	ContentID   string // optional Content-ID for inline attachments
	Content     []byte // raw file content
}
