package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/metrics"
)

// Credentials are the outbound mail account settings checked before any send.
type Credentials struct {
	User     string
	Password string
}

func (c Credentials) missing() []string {
	var missing []string
	if c.User == "" {
		missing = append(missing, "EMAIL_USER")
	}
	if c.Password == "" {
		missing = append(missing, "EMAIL_PASS")
	}
	return missing
}

// Service runs one submission through validation, composing and dispatch.
// It keeps no per-request state and is safe for concurrent use.
type Service struct {
	mailer      *mailer.Mailer
	composer    *Composer
	credentials Credentials
	provider    string
	unavailable error
	metrics     *metrics.Manager
	logger      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithProvider names the mail provider in logs and metrics.
func WithProvider(name string) ServiceOption {
	return func(s *Service) {
		s.provider = name
	}
}

// WithUnavailable marks the mail setup as broken. Every valid submission then
// fails with a *ConfigError wrapping err.
func WithUnavailable(err error) ServiceOption {
	return func(s *Service) {
		s.unavailable = err
	}
}

// WithMetrics records submission outcomes and dispatch latency.
func WithMetrics(m *metrics.Manager) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service. m may be nil when credentials are missing or
// the provider could not be built; every valid Submit then fails with *ConfigError.
func NewService(m *mailer.Mailer, composer *Composer, creds Credentials, opts ...ServiceOption) *Service {
	s := &Service{
		mailer:      m,
		composer:    composer,
		credentials: creds,
		provider:    "smtp",
		logger:      logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates sub, composes the message and hands it to the provider.
// It returns the provider message id. Nothing is retried.
func (s *Service) Submit(ctx context.Context, sub Submission) (string, error) {
	if err := sub.Validate(); err != nil {
		s.metrics.RecordSubmission(metrics.OutcomeInvalid)
		return "", err
	}

	if missing := s.credentials.missing(); len(missing) > 0 {
		s.metrics.RecordSubmission(metrics.OutcomeMisconfigured)
		s.logger.ErrorContext(ctx, "mail credentials not configured", slog.Any("missing", missing))
		return "", &ConfigError{Missing: missing}
	}
	if s.unavailable != nil || s.mailer == nil {
		err := s.unavailable
		if err == nil {
			err = errors.New("no mail sender")
		}
		s.metrics.RecordSubmission(metrics.OutcomeMisconfigured)
		s.logger.ErrorContext(ctx, "mail sender unavailable", slog.String("error", err.Error()))
		return "", &ConfigError{Err: err}
	}

	email, err := s.composer.Compose(sub)
	if err != nil {
		s.metrics.RecordSubmission(metrics.OutcomeFailed)
		s.logger.ErrorContext(ctx, "compose email failed", slog.String("error", err.Error()))
		return "", &DispatchError{Err: err, Provider: s.provider}
	}

	start := time.Now()
	id, err := s.mailer.Send(ctx, email)
	s.metrics.ObserveDispatch(s.provider, time.Since(start), err)
	if err != nil {
		s.metrics.RecordSubmission(metrics.OutcomeFailed)
		s.logger.ErrorContext(ctx, "send email failed",
			slog.String("provider", s.provider),
			slog.String("error", err.Error()),
		)
		return "", &DispatchError{Err: err, Provider: s.provider}
	}

	s.metrics.RecordSubmission(metrics.OutcomeSent)
	s.logger.InfoContext(ctx, "email sent",
		slog.String("provider", s.provider),
		slog.String("message_id", id),
	)
	return id, nil
}

// RecordRejected counts a request refused before reaching Submit.
func (s *Service) RecordRejected(outcome string) {
	s.metrics.RecordSubmission(outcome)
}
