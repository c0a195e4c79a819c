package resend

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

// Sender delivers mail through the Resend HTTP API.
type Sender struct {
	client *resend.Client
	from   string
}

// New returns a Sender authenticated with cfg.APIKey.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: resend api key is required", mailer.ErrInvalidConfig)
	}

	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: resend base url: %v", mailer.ErrInvalidConfig, err)
		}
		client.BaseURL = u
	}

	return &Sender{
		client: client,
		from:   mailer.Recipient(cfg.SenderName, cfg.SenderEmail),
	}, nil
}

// Send posts email to Resend and returns the id Resend assigned to it.
// An email without From is sent from the configured sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = s.from
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Cc:      email.CC,
		Bcc:     email.BCC,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		Headers: email.Headers,
	}
	for _, name := range email.Tags.Keys() {
		req.Tags = append(req.Tags, resend.Tag{Name: name, Value: email.Tags[name]})
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	if resp == nil || resp.Id == "" {
		return "", errors.New("resend: response carried no id")
	}
	return resp.Id, nil
}
