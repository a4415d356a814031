// Package icons maps the closed set of icon identifiers used by
// admin-configurable site sections to inline SVG renderers. Lookup is by
// enum variant, never by open-ended name reflection: parsing an unknown
// name yields the explicit Fallback variant, and rendering a variant
// with no registered renderer falls back the same way, so a stored icon
// name can never break a page.
package icons

import "strings"

// Icon identifies one icon in the closed set. The zero value is
// Fallback.
type Icon int

const (
	Fallback Icon = iota
	BookOpen
	Feather
	Calendar
	Search
	Heart
	Star
	Sun
	Moon
	Mail
	Sparkles
	Lock
	Cloud

	iconCount int = iota
)

var names = [iconCount]string{
	Fallback: "fallback",
	BookOpen: "book-open",
	Feather:  "feather",
	Calendar: "calendar",
	Search:   "search",
	Heart:    "heart",
	Star:     "star",
	Sun:      "sun",
	Moon:     "moon",
	Mail:     "mail",
	Sparkles: "sparkles",
	Lock:     "lock",
	Cloud:    "cloud",
}

var byName = func() map[string]Icon {
	m := make(map[string]Icon, iconCount)
	for i, name := range names {
		m[name] = Icon(i)
	}
	return m
}()

// String returns the icon's stable name, the form stored in the
// database and accepted by Parse.
func (i Icon) String() string {
	if i < 0 || int(i) >= iconCount {
		return names[Fallback]
	}
	return names[i]
}

// Parse maps a stored icon name to its variant. Matching is
// case-insensitive and ignores surrounding space; anything unknown maps
// to Fallback.
func Parse(s string) Icon {
	if icon, ok := ParseStrict(s); ok {
		return icon
	}
	return Fallback
}

// ParseStrict is Parse that reports whether the name was recognized
// instead of falling back.
func ParseStrict(s string) (Icon, bool) {
	icon, ok := byName[strings.ToLower(strings.TrimSpace(s))]
	return icon, ok
}

// All returns the selectable icons in display order, without Fallback.
// This is the set an admin icon picker offers.
func All() []Icon {
	out := make([]Icon, 0, iconCount-1)
	for i := 1; i < iconCount; i++ {
		out = append(out, Icon(i))
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names
// decode to Fallback rather than failing, matching Parse.
func (i *Icon) UnmarshalText(b []byte) error {
	*i = Parse(string(b))
	return nil
}
