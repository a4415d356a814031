// Package id generates the sortable identifiers used across the app:
// ULIDs for in-process objects like toasts, short IDs for media object
// keys, and prefixed reference codes for contact submissions.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"strings"
	"time"
)

// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewULID generates a ULID (Universally Unique Lexicographically
// Sortable Identifier): 10 chars of 48-bit millisecond timestamp
// followed by 16 chars of 80-bit randomness, 26 characters total,
// sortable by creation time.
func NewULID() string {
	var out [26]byte
	encodeTime(out[:10], uint64(time.Now().UnixMilli()))
	encodeRandom(out[10:])
	return string(out[:])
}

// NewShortID generates a 16-character sortable ID: 6 chars of truncated
// timestamp (30 bits, ~34 years of range) and 10 chars of 48-bit
// randomness. URL-safe; used for media object keys.
func NewShortID() string {
	var out [16]byte
	encodeTime(out[:6], uint64(time.Now().UnixMilli())&0x3FFFFFFF)
	encodeRandom(out[6:])
	return string(out[:])
}

// NewRef generates a human-pasteable reference code with the given
// prefix, like "CT-9XK42THD". Eight random Base32 characters give 40
// bits, plenty for support lookups while staying readable over email.
func NewRef(prefix string) string {
	var out [8]byte
	encodeRandom(out[:])
	return strings.ToUpper(prefix) + "-" + string(out[:])
}

// encodeTime writes ts into dst as big-endian 5-bit Crockford groups,
// one character per 5 bits, most significant first.
func encodeTime(dst []byte, ts uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = crockfordBase32[ts&0x1F]
		ts >>= 5
	}
}

// encodeRandom fills dst with characters drawn from a fresh random bit
// stream, 5 bits per character. A trailing partial group is left-padded
// with zero bits.
func encodeRandom(dst []byte) {
	need := (len(dst)*5 + 7) / 8
	buf := make([]byte, need)
	if _, err := rand.Read(buf); err != nil {
		// Fallback: use time-based entropy (degraded but functional).
		binary.BigEndian.PutUint64(buf[:min(8, need)], uint64(time.Now().UnixNano()))
	}

	var acc uint32
	var bits uint
	i := 0
	for _, b := range buf {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 && i < len(dst) {
			bits -= 5
			dst[i] = crockfordBase32[(acc>>bits)&0x1F]
			i++
		}
	}
	if i < len(dst) {
		dst[i] = crockfordBase32[(acc<<(5-bits))&0x1F]
	}
}
