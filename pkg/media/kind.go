package media

import "fmt"

// Kind partitions uploads by purpose. Each kind carries its own
// allowed MIME set and size limit, and becomes the first key segment.
type Kind string

const (
	// KindCover is a blog post cover image.
	KindCover Kind = "covers"

	// KindAttachment is a file attached to a journal entry.
	KindAttachment Kind = "attachments"
)

const (
	maxCoverSize      = 5 << 20  // 5MB
	maxAttachmentSize = 10 << 20 // 10MB
)

type kindRules struct {
	allowed []string
	maxSize int64
}

var rulesByKind = map[Kind]kindRules{
	KindCover: {
		allowed: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		maxSize: maxCoverSize,
	},
	KindAttachment: {
		allowed: []string{"image/*", "application/pdf"},
		maxSize: maxAttachmentSize,
	},
}

// validate checks an upload against the kind's rules.
func (k Kind) validate(size int64, contentType string) error {
	rules, ok := rulesByKind[k]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
	if size > rules.maxSize {
		return fmt.Errorf("%w: %d bytes over the %d byte limit", ErrFileTooLarge, size, rules.maxSize)
	}
	if !matchesMIME(contentType, rules.allowed) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return nil
}
