package contactform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/internal/contact"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/health"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/metrics"
)

// NewHandler assembles the application for a deployment. Both entry points
// call it; they differ only in how requests reach the returned App.
//
// Production serves POST/OPTIONS /api/send-email only. Development adds
// GET /, GET /health, GET /metrics and a JSON 404.
//
// Mail configuration problems are not errors here. Missing EMAIL_USER or
// EMAIL_PASS, or a provider that cannot be built, leave CORS and validation
// working and make the send-email endpoint answer 500 with the
// configuration message.
func NewHandler(cfg Config, d Deployment, opts ...Option) (*App, error) {
	o := buildOptions(cfg, d, opts...)

	var m *mailer.Mailer
	if cfg.Configured() && o.broken == nil {
		sender := o.sender
		if sender == nil {
			s, err := NewSender(cfg)
			if err != nil {
				o.logger.Error("mail provider unavailable",
					slog.String("provider", provider(cfg)),
					slog.String("error", err.Error()),
				)
				o.broken = err
			} else {
				sender = s
			}
		}
		if sender != nil {
			m = mailer.New(sender, cfg.Mail)
		}
	}

	var composerOpts []contact.ComposerOption
	if o.clock != nil {
		composerOpts = append(composerOpts, contact.WithClock(o.clock))
	}
	composer, err := contact.NewComposer(d, contact.Identity{
		SiteName:  cfg.SiteName,
		Sender:    cfg.EmailUser,
		Recipient: cfg.EmailRecipient,
	}, composerOpts...)
	if err != nil {
		return nil, fmt.Errorf("build composer: %w", err)
	}

	svc := contact.NewService(m, composer, cfg.Credentials(),
		contact.WithProvider(provider(cfg)),
		contact.WithMetrics(o.metrics),
		contact.WithLogger(o.logger),
		contact.WithUnavailable(o.broken),
	)

	appOpts := []internal.Option{
		internal.WithLogger(o.logger),
		internal.WithErrorHandler(contact.ErrorHandler(d, cfg.ExposeDetails(d))),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(),
			middlewares.Metrics(o.metrics),
			middlewares.Recover(),
		),
		internal.WithHandlers(contact.NewHandler(svc, d, contact.WithAllowedOrigins(cfg.AllowedOrigins...))),
	}

	if d == Development {
		appOpts = append(appOpts,
			internal.WithNotFoundHandler(contact.NotFound),
			internal.WithMethodNotAllowedHandler(contact.MethodNotAllowed),
			internal.WithHandlers(contact.NewInfoHandler(d, cfg.Port, healthOptions(cfg, o)...)),
		)
		if o.metrics != nil {
			appOpts = append(appOpts, internal.WithMount("/metrics", o.metrics.Handler()))
		}
	}

	return internal.New(appOpts...), nil
}

func buildOptions(cfg Config, d Deployment, opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.New(cfg.Log, middlewares.RequestIDExtractor())
	}
	if o.metrics == nil && d == Development {
		o.metrics = metrics.New()
	}
	return o
}

func healthOptions(cfg Config, o *options) []health.Option {
	opts := []health.Option{health.WithLogger(o.logger)}
	if cfg.HealthCheckMail {
		opts = append(opts, health.WithChecks(health.Checks{
			"mail": func(context.Context) error {
				if !cfg.Configured() {
					return health.ErrNotConfigured
				}
				return o.broken
			},
		}))
	}
	return opts
}
