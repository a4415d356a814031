package cms

import "errors"

var (
	// ErrPoolRequired is returned when NewService is called without a pool.
	ErrPoolRequired = errors.New("cms: pgx pool is required")

	// ErrNotFound is returned when a post, section, or submission does not exist.
	ErrNotFound = errors.New("cms: not found")

	// ErrTitleRequired is returned when a post title is empty.
	ErrTitleRequired = errors.New("cms: post title is required")

	// ErrTitleTooLong is returned when a post title exceeds 200 characters.
	ErrTitleTooLong = errors.New("cms: post title exceeds 200 characters")

	// ErrSectionKeyRequired is returned when a section key is empty or has
	// no sluggable characters.
	ErrSectionKeyRequired = errors.New("cms: section key is required")

	// ErrSectionTitleRequired is returned when a section title is empty.
	ErrSectionTitleRequired = errors.New("cms: section title is required")

	// ErrNameRequired is returned when a contact submission has no name.
	ErrNameRequired = errors.New("cms: name is required")

	// ErrNameTooLong is returned when a contact name exceeds 100 characters.
	ErrNameTooLong = errors.New("cms: name exceeds 100 characters")

	// ErrInvalidEmail is returned when a contact email does not parse as an
	// address with a dotted domain.
	ErrInvalidEmail = errors.New("cms: invalid email address")

	// ErrMessageRequired is returned when a contact message is empty after
	// markup is stripped.
	ErrMessageRequired = errors.New("cms: message is required")

	// ErrMessageTooLong is returned when a contact message exceeds 5000
	// characters.
	ErrMessageTooLong = errors.New("cms: message exceeds 5000 characters")

	// ErrStorageRequired is returned by UploadCover when the service was
	// built without media storage.
	ErrStorageRequired = errors.New("cms: media storage is not configured")

	// ErrQueryFailed wraps database driver errors.
	ErrQueryFailed = errors.New("cms: query failed")
)
