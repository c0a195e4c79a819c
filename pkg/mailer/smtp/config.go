package smtp

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

// TLS modes supported by the client.
const (
	TLSModeStartTLS = "starttls"
	TLSModeTLS      = "tls"
	TLSModePlain    = "plain"
)

// Config holds SMTP relay configuration.
// Either Service names a well-known provider profile, or Host (with optional
// Port and TLSMode) points at a custom relay. Host takes precedence.
type Config struct {
	Service  string `env:"MAIL_SERVICE" envDefault:"outlook"`
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	TLSMode  string `env:"SMTP_TLS_MODE"` // starttls, tls, or plain
	Username string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASS"`
}

type profile struct {
	host    string
	port    int
	tlsMode string
}

var profiles = map[string]profile{
	"outlook":   {host: "smtp-mail.outlook.com", port: 587, tlsMode: TLSModeStartTLS},
	"hotmail":   {host: "smtp-mail.outlook.com", port: 587, tlsMode: TLSModeStartTLS},
	"office365": {host: "smtp.office365.com", port: 587, tlsMode: TLSModeStartTLS},
	"gmail":     {host: "smtp.gmail.com", port: 465, tlsMode: TLSModeTLS},
	"yahoo":     {host: "smtp.mail.yahoo.com", port: 465, tlsMode: TLSModeTLS},
}

// Resolve fills Host, Port and TLSMode from the service profile when no
// explicit host is set, and validates the result.
func (c Config) Resolve() (Config, error) {
	if c.Host == "" {
		service := strings.ToLower(strings.TrimSpace(c.Service))
		if service == "" {
			service = "outlook"
		}
		p, ok := profiles[service]
		if !ok {
			return c, fmt.Errorf("%w: unknown mail service %q", mailer.ErrInvalidConfig, c.Service)
		}
		c.Host = p.host
		if c.Port == 0 {
			c.Port = p.port
		}
		if c.TLSMode == "" {
			c.TLSMode = p.tlsMode
		}
	}
	if c.Port == 0 {
		c.Port = 587
	}
	if c.TLSMode == "" {
		c.TLSMode = TLSModeStartTLS
	}

	if c.Port < 0 || c.Port > 65535 {
		return c, fmt.Errorf("%w: port must be between 1 and 65535", mailer.ErrInvalidConfig)
	}
	switch c.TLSMode {
	case TLSModeStartTLS, TLSModeTLS, TLSModePlain:
	default:
		return c, fmt.Errorf("%w: tls mode must be starttls, tls, or plain", mailer.ErrInvalidConfig)
	}
	if c.Username == "" {
		return c, fmt.Errorf("%w: username is required", mailer.ErrInvalidConfig)
	}
	if c.Password == "" {
		return c, fmt.Errorf("%w: password is required", mailer.ErrInvalidConfig)
	}
	return c, nil
}
