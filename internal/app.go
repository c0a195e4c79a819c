package internal

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

// App is a chi mux plus the error handling shared by every route.
// It is built once by New and not modified afterwards.
type App struct {
	mux    *chi.Mux
	logger *slog.Logger

	errorHandler     ErrorHandler
	notFound         HandlerFunc
	methodNotAllowed HandlerFunc

	middlewares []Middleware
	handlers    []Handler
	mounts      map[string]http.Handler
}

// New creates an application.
//
// Example:
//
//	app := internal.New(
//	    internal.WithMiddleware(middlewares.RequestID()),
//	    internal.WithHandlers(contact.NewHandler(svc, contact.Production)),
//	)
func New(opts ...Option) *App {
	a := &App{
		mux:              chi.NewRouter(),
		logger:           logger.NewNope(),
		mounts:           make(map[string]http.Handler),
		notFound:         func(Context) error { return ErrNotFound("") },
		methodNotAllowed: func(Context) error { return ErrMethodNotAllowed("") },
	}
	for _, opt := range opts {
		opt(a)
	}
	a.build()
	return a
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) build() {
	// chi panics if Use is called after a route is registered.
	for _, mw := range a.middlewares {
		a.mux.Use(a.chiMiddleware(mw))
	}

	// Unmatched requests go through the error handler like any route error.
	a.mux.NotFound(a.handle(a.notFound))
	a.mux.MethodNotAllowed(a.handle(a.methodNotAllowed))

	for pattern, h := range a.mounts {
		a.mux.Mount(pattern, h)
	}

	r := &router{mux: a.mux, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// handle adapts h to net/http, routing returned errors to the error handler.
func (a *App) handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a.logger)
		if err := h(c); err != nil {
			a.fail(c, err)
		}
	}
}

// chiMiddleware runs mw around the rest of the chi chain. Values stored with
// WithValue travel down through the request.
func (a *App) chiMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newContext(w, r, a.logger)
			err := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})(c)
			if err != nil {
				a.fail(c, err)
			}
		})
	}
}

// fail renders err unless a response is already on the wire.
func (a *App) fail(c Context, err error) {
	if c.Written() {
		return
	}

	if a.errorHandler == nil {
		code, msg := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
		if httpErr := AsHTTPError(err); httpErr != nil {
			code, msg = httpErr.Code, httpErr.Message
		}
		http.Error(c.Response(), msg, code)
		return
	}

	if herr := a.errorHandler(c, err); herr != nil {
		a.logger.ErrorContext(c.Context(), "error handler failed",
			slog.String("error", herr.Error()),
			slog.String("cause", err.Error()),
		)
	}
}
