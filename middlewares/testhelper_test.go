package middlewares_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

type testContext struct {
	rw      *internal.ResponseWriter
	request *http.Request
	logger  *slog.Logger
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		rw:      internal.NewResponseWriter(w),
		request: r,
		logger:  logger.NewNope(),
	}
}

func (c *testContext) withLogger(l *slog.Logger) *testContext {
	c.logger = l
	return c
}

func (c *testContext) Request() *http.Request {
	return c.request
}

func (c *testContext) Response() http.ResponseWriter {
	return c.rw
}

func (c *testContext) ResponseWriter() *internal.ResponseWriter {
	return c.rw
}

func (c *testContext) Context() context.Context {
	return c.request.Context()
}

func (c *testContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *testContext) SetHeader(name, value string) {
	c.rw.Header().Set(name, value)
}

func (c *testContext) Written() bool {
	return c.rw.Written()
}

func (c *testContext) Logger() *slog.Logger {
	return c.logger
}

func (c *testContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *testContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *testContext) Err() error {
	return c.request.Context().Err()
}

func (c *testContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *testContext) WithValue(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) JSON(code int, v any) error {
	c.rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

var _ internal.Context = (*testContext)(nil)
