package mailer

import "time"

// DefaultTimeout bounds a single provider call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Timeout time.Duration `env:"MAIL_TIMEOUT" envDefault:"15s"`
}
