package mailer

import (
	"context"
	"errors"
	"time"
)

// Mailer validates prepared emails and hands them to a Sender
// under an explicit timeout.
type Mailer struct {
	sender Sender
	config Config
}

// New creates a new Mailer with the given sender.
func New(sender Sender, cfg Config) *Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Mailer{
		sender: sender,
		config: cfg,
	}
}

// Send delivers a pre-built email and returns the provider message ID.
// Provider failures are joined with ErrSendFailed; a blown deadline is
// additionally joined with ErrTimeout.
func (m *Mailer) Send(ctx context.Context, email *Email) (string, error) {
	if err := Validate(email); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	id, err := m.sender.Send(ctx, email)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.Join(ErrSendFailed, ErrTimeout, err)
		}
		return "", errors.Join(ErrSendFailed, err)
	}

	return id, nil
}

// Timeout returns the effective provider timeout.
func (m *Mailer) Timeout() time.Duration {
	return m.config.Timeout
}

// Validate checks the fields every provider requires.
func Validate(email *Email) error {
	if email == nil || len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.From == "" {
		return ErrNoSender
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" {
		return ErrNoContent
	}
	return nil
}
