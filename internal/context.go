package internal

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Context is what handlers and middleware receive for one request.
// It is also a context.Context bound to the request, so it can be passed
// straight to blocking calls.
type Context interface {
	context.Context

	// Request returns the current request. WithValue replaces it.
	Request() *http.Request

	// Response returns the writer handlers should write to.
	Response() http.ResponseWriter

	// ResponseWriter exposes the recorded status and size of the response.
	ResponseWriter() *ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Header returns a request header.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes v as the JSON body with the given status.
	JSON(code int, v any) error

	// NoContent writes only the status line and headers.
	NoContent(code int) error

	// Written reports whether the status line has been sent.
	Written() bool

	// Logger returns the application logger.
	Logger() *slog.Logger

	// LogError logs at error level with the request context.
	LogError(msg string, attrs ...any)

	// WithValue stores value under key in the request context seen by
	// everything downstream.
	WithValue(key, value any)
}

type requestContext struct {
	request *http.Request
	rw      *ResponseWriter
	logger  *slog.Logger
}

// newContext wraps w unless an outer middleware layer already did.
func newContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}
	return &requestContext{request: r, rw: rw, logger: logger}
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.rw
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.rw
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.rw.Header().Set(name, value)
}

func (c *requestContext) Written() bool {
	return c.rw.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) JSON(code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.rw.WriteHeader(code)
	_, err = c.rw.Write(append(body, '\n'))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) WithValue(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}
