package form

import "errors"

var (
	// ErrInvalid is returned by Submit when validation fails; the field
	// errors are recorded on the controller for display.
	ErrInvalid = errors.New("form: validation failed")

	// ErrSubmitInFlight is returned by Submit while a previous submit's
	// action has not settled yet. The call is a no-op, never queued.
	ErrSubmitInFlight = errors.New("form: submit already in flight")

	// ErrNoAction is returned by Submit when no submit action was
	// configured.
	ErrNoAction = errors.New("form: no submit action configured")

	// ErrActionFailed wraps an error returned by the submit action.
	ErrActionFailed = errors.New("form: submit action failed")

	// ErrUnknownField is returned for operations on a field that was not
	// part of the initial record. The key set is closed at construction.
	ErrUnknownField = errors.New("form: unknown field")
)
