package cache

import "errors"

var (
	// ErrNotFound covers both absent and expired entries; callers see
	// the two cases the same way.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned by mutating operations once Close has run.
	ErrClosed = errors.New("cache: closed")

	// ErrMarshal and ErrUnmarshal wrap Marshaler failures so callers
	// can tell codec problems from backend ones.
	ErrMarshal   = errors.New("cache: failed to marshal value")
	ErrUnmarshal = errors.New("cache: failed to unmarshal value")
)
