package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

// Sender implements mailer.Sender over an authenticated SMTP relay.
type Sender struct {
	config Config
	dialer *gomail.Dialer
	now    func() time.Time
}

// New creates an SMTP-backed sender from a resolved configuration.
func New(cfg Config) (*Sender, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.TLSMode == TLSModeTLS
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	// Set up front: gomail otherwise picks the mechanism on first dial,
	// mutating the shared dialer.
	d.Auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)

	return &Sender{config: cfg, dialer: d, now: time.Now}, nil
}

// Addr returns the relay address the sender connects to.
func (s *Sender) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Send implements mailer.Sender. The returned id is the generated Message-ID.
// Send returns as soon as ctx ends; the SMTP conversation is abandoned.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	from := email.From
	if from == "" {
		from = s.config.Username
	}
	messageID := newMessageID(uuid.NewString(), from, s.config.Host)
	msg := buildMessage(email, from, messageID, s.now())

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("smtp %s: %w", s.Addr(), err)
		}
		return messageID, nil
	case <-ctx.Done():
		return "", fmt.Errorf("smtp %s: %w", s.Addr(), ctx.Err())
	}
}
