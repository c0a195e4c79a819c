package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/health"
)

func serve(t *testing.T, h http.HandlerFunc) (*httptest.ResponseRecorder, health.Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp health.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHandler(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, 3, 7, 15, 4, 5, 0, time.UTC)
	rec, resp := serve(t, health.Handler(
		health.WithEnvironment("development"),
		health.WithClock(func() time.Time { return fixed }),
	))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, health.StatusOK, resp.Status)
	require.Equal(t, "2025-03-07T15:04:05.000Z", resp.Timestamp)
	require.Equal(t, "development", resp.Environment)
	require.Empty(t, resp.Checks)
}

func TestHandler_Checks(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()

		rec, resp := serve(t, health.Handler(health.WithChecks(health.Checks{
			"mail": func(context.Context) error { return nil },
		})))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, health.StatusOK, resp.Checks["mail"].Status)
	})

	t.Run("one fails", func(t *testing.T) {
		t.Parallel()

		rec, resp := serve(t, health.Handler(health.WithChecks(health.Checks{
			"mail":  func(context.Context) error { return health.ErrNotConfigured },
			"other": func(context.Context) error { return nil },
		})))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, health.StatusUnavailable, resp.Status)
		require.Equal(t, health.ErrNotConfigured.Error(), resp.Checks["mail"].Error)
		require.Equal(t, health.StatusOK, resp.Checks["other"].Status)
	})

	t.Run("timeout reaches checks", func(t *testing.T) {
		t.Parallel()

		rec, resp := serve(t, health.Handler(
			health.WithTimeout(10*time.Millisecond),
			health.WithChecks(health.Checks{
				"slow": func(ctx context.Context) error {
					<-ctx.Done()
					return errors.New("deadline")
				},
			}),
		))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "deadline", resp.Checks["slow"].Error)
	})
}
