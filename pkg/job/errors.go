package job

import "errors"

var (
	// ErrNotConfigured is returned when job functionality is used but no
	// manager was wired into the app.
	ErrNotConfigured = errors.New("job: not configured")

	// ErrUnknownTask is returned when a job names a task that has not
	// been registered.
	ErrUnknownTask = errors.New("job: unknown task")

	// ErrInvalidPayload is returned when a task payload cannot be
	// unmarshaled into the handler's payload type.
	ErrInvalidPayload = errors.New("job: invalid payload")

	// ErrAlreadyStarted is returned by Start on a running manager.
	ErrAlreadyStarted = errors.New("job: already started")

	// ErrNotStarted is returned by Stop on a stopped manager.
	ErrNotStarted = errors.New("job: not started")

	// ErrPoolRequired is returned when a manager or enqueuer is created
	// without a database pool.
	ErrPoolRequired = errors.New("job: pool is required")
)
