package config

import "errors"

var (
	// ErrParse is returned when environment variables cannot be parsed
	// into the target struct.
	ErrParse = errors.New("config: failed to parse environment")

	// ErrNilTarget is returned when Load receives a nil pointer.
	ErrNilTarget = errors.New("config: nil target provided")

	// ErrNotLoaded is returned when a configuration type failed to load
	// and no cached value exists for it.
	ErrNotLoaded = errors.New("config: configuration not loaded")

	// ErrMissingProject is returned when the backend project URL or ref
	// is absent.
	ErrMissingProject = errors.New("config: backend project URL and ref are required")

	// ErrProjectMismatch is returned when the backend project ref does
	// not appear in the project URL.
	ErrProjectMismatch = errors.New("config: backend project ref does not match project URL")
)
