package health

import "errors"

var (
	// ErrCheckFailed is what Response.Err wraps, with the names of the
	// failed checks appended.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout replaces a check's own error when the run
	// deadline expires before the check returns.
	ErrCheckTimeout = errors.New("health: check timeout")
)
