package notify

import "errors"

// Notification center errors.
var (
	// ErrNotStarted is returned by Push before Start or after Stop,
	// and by Stop when the center is not running.
	ErrNotStarted = errors.New("notify: center not started")

	// ErrAlreadyStarted is returned when starting a running center.
	ErrAlreadyStarted = errors.New("notify: center already started")
)
