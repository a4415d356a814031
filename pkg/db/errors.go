package db

import "errors"

var (
	// ErrFailedToParseDBConfig is returned before any connection attempt,
	// when the connection string itself does not parse.
	ErrFailedToParseDBConfig = errors.New("db: failed to parse database configuration")

	// ErrFailedToOpenDBConnection covers the failures after parsing: the
	// retry budget ran out, or the context ended while waiting between
	// attempts. The context error is joined in the latter case.
	ErrFailedToOpenDBConnection = errors.New("db: failed to open database connection")

	// ErrHealthcheckFailed is returned by Healthcheck for a nil pool or
	// an unanswered ping.
	ErrHealthcheckFailed = errors.New("db: healthcheck failed")
)
