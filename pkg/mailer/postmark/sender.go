package postmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

// Sender implements mailer.Sender using Postmark's transactional API.
type Sender struct {
	client *postmark.Client
	config Config
}

// New creates a Postmark-backed email sender.
// The server token is required; the account token is only needed for
// account-level API calls and may be empty.
func New(cfg Config) (*Sender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: postmark server token is required", mailer.ErrInvalidConfig)
	}

	client := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.BaseURL != "" {
		client.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}

	return &Sender{
		client: client,
		config: cfg,
	}, nil
}

// Send implements mailer.Sender and returns the Postmark MessageID.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	msg := postmark.Email{
		From:          email.From,
		To:            strings.Join(email.To, ","),
		Cc:            strings.Join(email.CC, ","),
		Bcc:           strings.Join(email.BCC, ","),
		ReplyTo:       email.ReplyTo,
		Subject:       email.Subject,
		HTMLBody:      email.HTML,
		TextBody:      email.Text,
		Tag:           email.Tags[mailer.TagCategory],
		TrackOpens:    s.config.TrackOpens,
		MessageStream: s.config.MessageStream,
	}
	for name, value := range email.Headers {
		msg.Headers = append(msg.Headers, postmark.Header{Name: name, Value: value})
	}

	resp, err := s.client.SendEmail(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("postmark: failed to send email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return "", fmt.Errorf("postmark: error %d: %s", resp.ErrorCode, resp.Message)
	}
	if resp.MessageID == "" {
		return "", errors.New("postmark: empty message id")
	}

	return resp.MessageID, nil
}
