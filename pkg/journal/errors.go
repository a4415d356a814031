package journal

import "errors"

// Journal data layer errors.
var (
	// ErrPoolRequired is returned when creating a service without a
	// database pool.
	ErrPoolRequired = errors.New("journal: pool is required")

	// ErrNotFound is returned when the requested journal or entry does
	// not exist or belongs to another owner.
	ErrNotFound = errors.New("journal: not found")

	// ErrJournalNameRequired is returned when a journal name is empty
	// after trimming.
	ErrJournalNameRequired = errors.New("journal: name is required")

	// ErrJournalNameTooLong is returned when a journal name exceeds
	// 100 characters.
	ErrJournalNameTooLong = errors.New("journal: name exceeds 100 characters")

	// ErrEntryTitleRequired is returned when an entry title is empty
	// after trimming.
	ErrEntryTitleRequired = errors.New("journal: entry title is required")

	// ErrEntryTitleTooLong is returned when an entry title exceeds
	// 200 characters.
	ErrEntryTitleTooLong = errors.New("journal: entry title exceeds 200 characters")

	// ErrInvalidDateRange is returned when a filter's From date is
	// after its To date.
	ErrInvalidDateRange = errors.New("journal: date range start is after end")

	// ErrQueryFailed wraps database driver errors.
	ErrQueryFailed = errors.New("journal: query failed")
)
