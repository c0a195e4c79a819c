package contactform

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/contactform/internal/contact"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/mailer/postmark"
	"github.com/dmitrymomot/contactform/pkg/mailer/resend"
	"github.com/dmitrymomot/contactform/pkg/mailer/smtp"
)

// Config is read once at startup and passed down explicitly.
type Config struct {
	// EmailUser is the outbound account address.
	EmailUser string `env:"EMAIL_USER"`
	// EmailPass is the account password, or the API key/server token for
	// API-based providers.
	EmailPass string `env:"EMAIL_PASS"`
	// EmailRecipient receives submissions. Defaults to EmailUser.
	EmailRecipient string `env:"EMAIL_RECIPIENT"`

	Port     int    `env:"PORT" envDefault:"3001"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	SiteName string `env:"SITE_NAME" envDefault:"GPO Magno"`

	// MailProvider is smtp, resend or postmark.
	MailProvider string `env:"MAIL_PROVIDER" envDefault:"smtp"`

	// AllowedOrigins replaces the deployment's CORS allow-list when set.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// HealthCheckMail makes /health report 503 while mail credentials are missing.
	HealthCheckMail bool `env:"HEALTH_CHECK_MAIL"`

	Mail     mailer.Config
	SMTP     smtp.Config
	Resend   resend.Config
	Postmark postmark.Config
	Log      logger.Config
}

// LoadConfig loads the given .env files, when present, and parses the environment.
// Variables already set in the process environment win over .env values.
// On a parse error the returned Config still holds every field that parsed.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Credentials returns the mail account settings checked on every submission.
func (c Config) Credentials() contact.Credentials {
	return contact.Credentials{User: c.EmailUser, Password: c.EmailPass}
}

// Configured reports whether both EMAIL_USER and EMAIL_PASS are set.
func (c Config) Configured() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}

// ExposeDetails reports whether 500 responses carry the raw error text.
// Development always does; production only when APP_ENV is not "production".
func (c Config) ExposeDetails(d contact.Deployment) bool {
	return d == contact.Development || c.AppEnv != "production"
}
