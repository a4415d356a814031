package slug

import (
	"crypto/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultSuffixLength = 6

const (
	suffixCharsLower = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixCharsMixed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Make converts input into a URL-safe slug.
//
// Processing order: custom replacements, character stripping, diacritic
// normalization, case folding, word joining, then suffix and length
// handling. Characters outside [a-zA-Z0-9] act as word boundaries and
// never appear in the result.
func Make(input string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := input
	for from, to := range cfg.replacements {
		s = strings.ReplaceAll(s, from, to)
	}
	if cfg.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(cfg.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	s = normalize(s)
	if cfg.lowercase {
		s = strings.ToLower(s)
	}

	result := joinWords(s, cfg.separator)

	switch {
	case cfg.suffixLength > 0 || cfg.isReserved(result):
		result = appendSuffix(result, cfg)
	case cfg.maxLength > 0 && utf8.RuneCountInString(result) > cfg.maxLength:
		result = strings.TrimRight(truncate(result, cfg.maxLength), cfg.separator)
	}

	if cfg.minLength > 0 && utf8.RuneCountInString(result) < cfg.minLength {
		result = padToMin(result, cfg)
	}

	return result
}

// normalize strips combining marks after canonical decomposition and
// folds the few Latin letters that do not decompose (ß, æ, œ, ø, ł, đ).
// NFD rather than NFKD: compatibility characters like ™ should act as
// word boundaries, not leak letters into the slug.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Map(foldLatin))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func foldLatin(r rune) rune {
	switch r {
	case 'ß':
		return 's'
	case 'ẞ':
		return 'S'
	case 'æ':
		return 'a'
	case 'Æ':
		return 'A'
	case 'œ':
		return 'o'
	case 'Œ':
		return 'O'
	case 'ø':
		return 'o'
	case 'Ø':
		return 'O'
	case 'ł':
		return 'l'
	case 'Ł':
		return 'L'
	case 'đ':
		return 'd'
	case 'Đ':
		return 'D'
	}
	return r
}

// joinWords splits s into runs of ASCII alphanumerics and joins them
// with the separator. Leading, trailing, and repeated boundaries
// collapse away.
func joinWords(s, separator string) string {
	var words []string
	var b strings.Builder
	for _, r := range s {
		if isAlnum(r) {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		words = append(words, b.String())
	}
	return strings.Join(words, separator)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func (c config) isReserved(s string) bool {
	if len(c.reserved) == 0 || s == "" {
		return false
	}
	_, ok := c.reserved[strings.ToLower(s)]
	return ok
}

// appendSuffix attaches a random suffix to base, fitting the result
// into maxLength when one is set. An explicitly requested suffix keeps
// its full length and the base gives way; a suffix added only to avoid
// a reserved slug shrinks instead, keeping the base intact.
func appendSuffix(base string, cfg config) string {
	n := cfg.suffixLength
	if n == 0 {
		n = defaultSuffixLength
	}
	suffix := randomString(n, cfg.lowercase)

	if base == "" {
		return truncate(suffix, cfg.maxLength)
	}
	if cfg.maxLength == 0 {
		return base + cfg.separator + suffix
	}

	sepLen := utf8.RuneCountInString(cfg.separator)
	baseLen := utf8.RuneCountInString(base)
	if baseLen+sepLen+n <= cfg.maxLength {
		return base + cfg.separator + suffix
	}

	if cfg.suffixLength > 0 {
		room := cfg.maxLength - n - sepLen
		if room <= 0 {
			return truncate(suffix, cfg.maxLength)
		}
		head := strings.TrimRight(truncate(base, room), cfg.separator)
		if head == "" {
			return truncate(suffix, cfg.maxLength)
		}
		return head + cfg.separator + suffix
	}

	room := cfg.maxLength - baseLen - sepLen
	if room <= 0 {
		return truncate(base+cfg.separator+suffix, cfg.maxLength)
	}
	return base + cfg.separator + truncate(suffix, room)
}

// padToMin appends a fixed-size random suffix to results shorter than
// the configured minimum. MaxLength still wins when both are set.
func padToMin(result string, cfg config) string {
	suffix := randomString(defaultSuffixLength, cfg.lowercase)
	if result == "" {
		result = suffix
	} else {
		result += cfg.separator + suffix
	}
	return truncate(result, cfg.maxLength)
}

// truncate cuts s to max runes. Non-positive max means no limit.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func randomString(n int, lowercase bool) string {
	if n <= 0 {
		return ""
	}
	charset := suffixCharsMixed
	if lowercase {
		charset = suffixCharsLower
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// Fallback: derive bytes from the clock (degraded but functional).
		ns := time.Now().UnixNano()
		for i := range buf {
			buf[i] = byte(ns >> (uint(i%8) * 8))
		}
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = charset[int(b)%len(charset)]
	}
	return string(out)
}
