package middlewares_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a uuid when absent", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		var seen string
		err := middlewares.RequestID()(func(c internal.Context) error {
			seen = middlewares.GetRequestID(c)
			return nil
		})(ctx)
		require.NoError(t, err)

		_, parseErr := uuid.Parse(seen)
		require.NoError(t, parseErr)
		require.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("reuses upstream header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Vercel-Id", "iad1::abcde-123")
		rec := httptest.NewRecorder()

		var seen string
		err := middlewares.RequestID()(func(c internal.Context) error {
			seen = middlewares.GetRequestID(c)
			return nil
		})(newTestContext(rec, req))
		require.NoError(t, err)
		require.Equal(t, "iad1::abcde-123", seen)
		require.Equal(t, "iad1::abcde-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("ignores oversized upstream header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
		rec := httptest.NewRecorder()

		err := middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "generated" }))(
			func(internal.Context) error { return nil },
		)(newTestContext(rec, req))
		require.NoError(t, err)
		require.Equal(t, "generated", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Request-ID", "ignored")
		req.Header.Set("X-Trace", "trace-1")
		rec := httptest.NewRecorder()

		err := middlewares.RequestID(middlewares.WithRequestIDHeaders("X-Trace"))(
			func(internal.Context) error { return nil },
		)(newTestContext(rec, req))
		require.NoError(t, err)
		require.Equal(t, "trace-1", rec.Header().Get("X-Request-ID"))
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()

	require.Empty(t, middlewares.GetRequestID(context.Background()))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := logger.NewWithWriter(&logs, slog.LevelInfo, middlewares.RequestIDExtractor())

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Request-ID", "req-7")

	err := middlewares.RequestID()(func(c internal.Context) error {
		log.InfoContext(c, "inside")
		return nil
	})(newTestContext(httptest.NewRecorder(), req))
	require.NoError(t, err)
	require.Contains(t, logs.String(), `"request_id":"req-7"`)
}
