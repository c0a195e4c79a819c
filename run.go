package contactform

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

const sentryFlushTimeout = 2 * time.Second

// Run builds the app for d and serves it on cfg.Port until ctx is cancelled
// or the process receives SIGINT/SIGTERM, then drains in-flight requests.
func Run(ctx context.Context, cfg Config, d Deployment, opts ...Option) error {
	o := buildOptions(cfg, d, opts...)

	// Resolved options are passed back so NewHandler does not build a second
	// logger or metrics registry.
	app, err := NewHandler(cfg, d,
		WithLogger(o.logger),
		WithMetrics(o.metrics),
		WithSender(o.sender),
		WithClock(o.clock),
		WithMailUnavailable(o.broken),
	)
	if err != nil {
		return err
	}

	log := o.logger
	log.InfoContext(ctx, "configuration loaded",
		slog.String("environment", d.String()),
		slog.Int("port", cfg.Port),
		slog.String("mail_provider", provider(cfg)),
		slog.Bool("email_user_configured", cfg.EmailUser != ""),
		slog.Bool("email_pass_configured", cfg.EmailPass != ""),
		slog.Bool("email_recipient_configured", cfg.EmailRecipient != ""),
	)

	runOpts := []internal.RunOption{
		internal.Logger(log),
		internal.WithContext(ctx),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.ShutdownHook(func(context.Context) error {
			logger.Flush(sentryFlushTimeout)
			return nil
		}),
	}
	if o.onListen != nil {
		runOpts = append(runOpts, internal.OnListen(o.onListen))
	}

	return app.Run(net.JoinHostPort("", strconv.Itoa(cfg.Port)), runOpts...)
}
