package smtp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/mailer/smtp"
)

func TestConfig_Resolve(t *testing.T) {
	t.Parallel()

	creds := smtp.Config{Username: "forms@outlook.com", Password: "secret"}

	tests := []struct {
		name     string
		mutate   func(c *smtp.Config)
		wantHost string
		wantPort int
		wantTLS  string
	}{
		{
			name:     "default is outlook",
			mutate:   func(*smtp.Config) {},
			wantHost: "smtp-mail.outlook.com",
			wantPort: 587,
			wantTLS:  smtp.TLSModeStartTLS,
		},
		{
			name:     "gmail profile",
			mutate:   func(c *smtp.Config) { c.Service = "Gmail" },
			wantHost: "smtp.gmail.com",
			wantPort: 465,
			wantTLS:  smtp.TLSModeTLS,
		},
		{
			name:     "profile port override",
			mutate:   func(c *smtp.Config) { c.Service = "office365"; c.Port = 25 },
			wantHost: "smtp.office365.com",
			wantPort: 25,
			wantTLS:  smtp.TLSModeStartTLS,
		},
		{
			name:     "explicit host wins over service",
			mutate:   func(c *smtp.Config) { c.Service = "gmail"; c.Host = "relay.example.com" },
			wantHost: "relay.example.com",
			wantPort: 587,
			wantTLS:  smtp.TLSModeStartTLS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := creds
			tt.mutate(&cfg)

			got, err := cfg.Resolve()
			require.NoError(t, err)
			require.Equal(t, tt.wantHost, got.Host)
			require.Equal(t, tt.wantPort, got.Port)
			require.Equal(t, tt.wantTLS, got.TLSMode)
		})
	}
}

func TestConfig_Resolve_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config smtp.Config
	}{
		{name: "unknown service", config: smtp.Config{Service: "carrier-pigeon", Username: "u", Password: "p"}},
		{name: "bad tls mode", config: smtp.Config{Host: "relay.example.com", TLSMode: "ssl3", Username: "u", Password: "p"}},
		{name: "port too high", config: smtp.Config{Host: "relay.example.com", Port: 70000, Username: "u", Password: "p"}},
		{name: "missing username", config: smtp.Config{Password: "p"}},
		{name: "missing password", config: smtp.Config{Username: "u"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.config.Resolve()
			require.ErrorIs(t, err, mailer.ErrInvalidConfig)

			_, err = smtp.New(tt.config)
			require.ErrorIs(t, err, mailer.ErrInvalidConfig)
		})
	}
}
