package contactform

import (
	"log/slog"
	"net"
	"time"

	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/metrics"
)

// Option configures NewHandler and Run.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	metrics  *metrics.Manager
	sender   mailer.Sender
	clock    func() time.Time
	onListen func(net.Addr)
	broken   error
}

// WithLogger sets the application logger. Defaults to a JSON logger built
// from Config.Log with the request id extractor.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records metrics into m. Development builds create their own
// Manager and expose it on /metrics when none is given.
func WithMetrics(m *metrics.Manager) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithSender replaces the provider selected by MAIL_PROVIDER.
func WithSender(s mailer.Sender) Option {
	return func(o *options) {
		o.sender = s
	}
}

// WithClock overrides the time source for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithMailUnavailable starts the app with the mail service marked broken by
// err. The gate and validation keep working; valid submissions answer 500.
func WithMailUnavailable(err error) Option {
	return func(o *options) {
		o.broken = err
	}
}

// WithOnListen is called by Run with the bound address.
func WithOnListen(fn func(net.Addr)) Option {
	return func(o *options) {
		o.onListen = fn
	}
}
