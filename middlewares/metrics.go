package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/pkg/metrics"
)

// Metrics returns middleware recording request count and latency per route
// pattern. Requests that match no route are labelled "unmatched" and
// non-standard methods "other" to keep label cardinality bounded.
func Metrics(m *metrics.Manager) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			route := "unmatched"
			if rctx := chi.RouteContext(c.Request().Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			m.RecordHTTP(route, methodLabel(c.Request().Method), c.ResponseWriter().Status(), time.Since(start))
			return err
		}
	}
}

func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodConnect, http.MethodTrace:
		return method
	}
	return "other"
}
