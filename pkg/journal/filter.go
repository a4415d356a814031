package journal

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	maxEntryTags     = 20
)

// Filter narrows ListEntries results. The zero value lists the newest
// entries across all of the owner's journals.
type Filter struct {
	// JournalID restricts results to one journal. uuid.Nil means all.
	JournalID uuid.UUID

	// From and To bound the entry date, inclusive. A zero time leaves
	// that side open.
	From time.Time
	To   time.Time

	// Query is matched case- and accent-insensitively against entry
	// titles and bodies.
	Query string

	// Tags keeps entries carrying at least one of the given tags.
	Tags []string

	// Limit defaults to 20 and is capped at 100. Negative Offset is
	// treated as zero.
	Limit  int
	Offset int
}

func (f Filter) validate() error {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return ErrInvalidDateRange
	}
	return nil
}

func (f Filter) limit() int {
	switch {
	case f.Limit <= 0:
		return defaultListLimit
	case f.Limit > maxListLimit:
		return maxListLimit
	default:
		return f.Limit
	}
}

func (f Filter) offset() int {
	return max(f.Offset, 0)
}

// normalizeQuery folds case and strips combining marks so a search for
// "Café" matches entries typed without the accent.
func normalizeQuery(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, q); err == nil {
		q = out
	}
	return cases.Fold().String(q)
}

// normalizeTags trims, lowercases, and deduplicates tags, dropping
// empties and keeping at most 20. Order is preserved.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
		if len(out) == maxEntryTags {
			break
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
