package postmark

// Config holds Postmark email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	// MessageStream selects the Postmark stream; empty means "outbound".
	MessageStream string `env:"POSTMARK_MESSAGE_STREAM"`
	TrackOpens    bool   `env:"POSTMARK_TRACK_OPENS"`
	// BaseURL overrides the API endpoint; empty means the public Postmark API.
	BaseURL string `env:"POSTMARK_BASE_URL"`
}
