package mailer

import "errors"

var (
	ErrNoRecipient = errors.New("email must have at least one recipient")
	ErrNoSubject   = errors.New("email must have a subject")
	ErrNoContent   = errors.New("email must have HTML content")

	ErrTemplateNotFound = errors.New("template not found")
	ErrLayoutNotFound   = errors.New("layout not found")

	// ErrRenderFailed wraps template parsing and execution failures.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrSendFailed wraps provider delivery failures.
	ErrSendFailed = errors.New("failed to send email")

	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
