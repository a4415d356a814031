package slug

import "strings"

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength    int
	minLength    int
	separator    string
	lowercase    bool
	stripChars   string
	replacements map[string]string
	suffixLength int
	reserved     map[string]struct{}
}

func defaultConfig() config {
	return config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength limits the slug to n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// MinLength pads slugs shorter than n runes with a random suffix.
// Zero means no minimum.
func MinLength(n int) Option {
	return func(c *config) { c.minLength = n }
}

// Separator sets the string inserted between words. Defaults to "-".
// An empty separator concatenates words directly.
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// Lowercase controls case folding. Enabled by default.
func Lowercase(enabled bool) Option {
	return func(c *config) { c.lowercase = enabled }
}

// StripChars removes the given characters entirely before slugification,
// so the text around them joins without a separator.
func StripChars(chars string) Option {
	return func(c *config) { c.stripChars = chars }
}

// CustomReplace applies the given string replacements before any other
// processing, e.g. {"&": "and"}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) { c.replacements = replacements }
}

// WithSuffix appends a random alphanumeric suffix of n characters,
// separated from the slug by the configured separator. Zero disables
// the suffix.
func WithSuffix(n int) Option {
	return func(c *config) { c.suffixLength = n }
}

// ReservedSlugs registers slugs that must never be produced as-is.
// When the result matches one of them (case-insensitive), a random
// suffix is appended to break the collision.
func ReservedSlugs(slugs ...string) Option {
	return func(c *config) {
		if len(slugs) == 0 {
			return
		}
		if c.reserved == nil {
			c.reserved = make(map[string]struct{}, len(slugs))
		}
		for _, s := range slugs {
			c.reserved[strings.ToLower(s)] = struct{}{}
		}
	}
}
