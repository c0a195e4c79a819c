package resend

// Config is parsed from the environment by caarlos0/env.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`

	// Used for messages that carry no From.
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`

	// Empty means the public API.
	BaseURL string `env:"RESEND_BASE_URL"`
}
