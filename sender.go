package contactform

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/mailer/postmark"
	"github.com/dmitrymomot/contactform/pkg/mailer/resend"
	"github.com/dmitrymomot/contactform/pkg/mailer/smtp"
)

// Mail providers accepted in MAIL_PROVIDER.
const (
	ProviderSMTP     = "smtp"
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
)

// NewSender builds the mailer.Sender selected by cfg.MailProvider.
// EMAIL_USER and EMAIL_PASS fill in whatever the provider config leaves empty.
func NewSender(cfg Config) (mailer.Sender, error) {
	switch provider(cfg) {
	case ProviderSMTP:
		sc := cfg.SMTP
		sc.Username = cfg.EmailUser
		sc.Password = cfg.EmailPass
		s, err := smtp.New(sc)
		if err != nil {
			return nil, err
		}
		return s, nil

	case ProviderResend:
		rc := cfg.Resend
		if rc.APIKey == "" {
			rc.APIKey = cfg.EmailPass
		}
		if rc.SenderEmail == "" {
			rc.SenderEmail = cfg.EmailUser
		}
		s, err := resend.New(rc)
		if err != nil {
			return nil, err
		}
		return s, nil

	case ProviderPostmark:
		pc := cfg.Postmark
		if pc.ServerToken == "" {
			pc.ServerToken = cfg.EmailPass
		}
		s, err := postmark.New(pc)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("%w: unknown mail provider %q", mailer.ErrInvalidConfig, cfg.MailProvider)
}

func provider(cfg Config) string {
	p := strings.ToLower(strings.TrimSpace(cfg.MailProvider))
	if p == "" {
		return ProviderSMTP
	}
	return p
}
