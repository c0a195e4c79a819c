package health

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

const (
	StatusOK          = "OK"
	StatusUnavailable = "UNAVAILABLE"

	defaultTimeout = 5 * time.Second

	// JavaScript's Date.toISOString layout.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ErrNotConfigured is what a check returns for a dependency missing its settings.
var ErrNotConfigured = errors.New("health: not configured")

// CheckFunc reports a dependency as healthy by returning nil.
type CheckFunc func(ctx context.Context) error

// Checks maps a check name to its function.
type Checks map[string]CheckFunc

// Response is the body written by Handler.
type Response struct {
	Status      string           `json:"status"`
	Timestamp   string           `json:"timestamp"`
	Environment string           `json:"environment,omitempty"`
	Checks      map[string]Check `json:"checks,omitempty"`
}

// Check is the outcome of one CheckFunc.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type prober struct {
	checks      Checks
	environment string
	timeout     time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// Option configures Handler.
type Option func(*prober)

func WithEnvironment(env string) Option {
	return func(p *prober) { p.environment = env }
}

func WithChecks(checks Checks) Option {
	return func(p *prober) { p.checks = checks }
}

// WithTimeout bounds all checks together. Defaults to 5s.
func WithTimeout(d time.Duration) Option {
	return func(p *prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger receives a warning per failed check.
func WithLogger(l *slog.Logger) Option {
	return func(p *prober) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClock replaces time.Now for the timestamp.
func WithClock(now func() time.Time) Option {
	return func(p *prober) {
		if now != nil {
			p.now = now
		}
	}
}

// probe runs every check concurrently under the shared timeout.
func (p *prober) probe(ctx context.Context) Response {
	resp := Response{
		Status:      StatusOK,
		Timestamp:   p.now().UTC().Format(timestampLayout),
		Environment: p.environment,
	}
	if len(p.checks) == 0 {
		return resp
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var mu sync.Mutex
	resp.Checks = make(map[string]Check, len(p.checks))

	// Checks never return errors to the group, so one failure does not cancel the rest.
	var g errgroup.Group
	for name, check := range p.checks {
		g.Go(func() error {
			res := Check{Status: StatusOK}
			if err := check(ctx); err != nil {
				res = Check{Status: StatusUnavailable, Error: err.Error()}
				p.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			resp.Checks[name] = res
			if res.Status != StatusOK {
				resp.Status = StatusUnavailable
			}
			return nil
		})
	}
	_ = g.Wait()

	return resp
}

// Handler serves the health report as JSON:
//
//	{"status":"OK","timestamp":"2025-03-07T15:04:05.000Z","environment":"development"}
//
// The code is 503 when any check fails.
func Handler(opts ...Option) http.HandlerFunc {
	p := &prober{
		timeout: defaultTimeout,
		now:     time.Now,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := p.probe(r.Context())

		code := http.StatusOK
		if resp.Status != StatusOK {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
