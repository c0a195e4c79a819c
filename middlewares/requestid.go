package middlewares

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

type requestIDKey struct{}

const (
	requestIDHeader    = "X-Request-ID"
	maxRequestIDLength = 128
)

// Upstream headers trusted for an existing id, in order. X-Vercel-Id is set
// by the serverless platform in front of api.Handler.
var defaultRequestIDSources = []string{"X-Request-ID", "X-Correlation-ID", "X-Vercel-Id"}

type requestIDs struct {
	sources  []string
	generate func() string
}

// RequestIDOption configures RequestID.
type RequestIDOption func(*requestIDs)

// WithRequestIDHeaders replaces the upstream headers checked for an id.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(r *requestIDs) {
		r.sources = headers
	}
}

// WithRequestIDGenerator replaces uuid.NewString.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(r *requestIDs) {
		if gen != nil {
			r.generate = gen
		}
	}
}

func (r *requestIDs) resolve(c internal.Context) string {
	for _, h := range r.sources {
		if v := c.Header(h); v != "" && len(v) <= maxRequestIDLength {
			return v
		}
	}
	return r.generate()
}

// RequestID tags every request with an id, reusing a short upstream one when
// present. The id is echoed in X-Request-ID and available via GetRequestID.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	ids := &requestIDs{sources: defaultRequestIDSources, generate: uuid.NewString}
	for _, opt := range opts {
		opt(ids)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id := ids.resolve(c)
			c.WithValue(requestIDKey{}, id)
			c.SetHeader(requestIDHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the id stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds "request_id" to log records.
func RequestIDExtractor() logger.ContextExtractor {
	return logger.ContextValue(requestIDKey{}, "request_id")
}
