package mailer

import "errors"

// Validation errors returned by Mailer.Send before any provider is called.
var (
	ErrNoRecipient = errors.New("email must have at least one recipient")
	ErrNoSender    = errors.New("email must have a sender")
	ErrNoSubject   = errors.New("email must have a subject")
	ErrNoContent   = errors.New("email must have HTML content")
)

var (
	// ErrSendFailed is joined with every provider failure.
	ErrSendFailed = errors.New("failed to send email")

	// ErrTimeout is joined with ErrSendFailed when the send deadline expired.
	ErrTimeout = errors.New("email provider timed out")

	ErrRenderFailed       = errors.New("failed to render template")
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrInvalidConfig is returned by provider constructors.
	ErrInvalidConfig = errors.New("invalid email configuration")
)
