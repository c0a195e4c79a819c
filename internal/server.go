package internal

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultShutdownTimeout = 30 * time.Second
	readHeaderTimeout      = 5 * time.Second
	readTimeout            = 15 * time.Second
	writeTimeout           = 30 * time.Second
	idleTimeout            = 60 * time.Second
	maxHeaderBytes         = 1 << 20
)

// RunOption configures App.Run.
type RunOption func(*server)

// Logger sets the logger for server lifecycle events. Defaults to the app logger.
func Logger(l *slog.Logger) RunOption {
	return func(s *server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithContext sets the parent context. Cancelling it starts a graceful shutdown.
func WithContext(ctx context.Context) RunOption {
	return func(s *server) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// ShutdownTimeout bounds how long in-flight requests get to drain.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(s *server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// ShutdownHook runs after the listener is closed, in registration order.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return func(s *server) {
		if fn != nil {
			s.hooks = append(s.hooks, fn)
		}
	}
}

// OnListen is called with the bound address once the listener is open.
// Useful with ":0" in tests.
func OnListen(fn func(net.Addr)) RunOption {
	return func(s *server) {
		s.onListen = fn
	}
}

type server struct {
	ctx             context.Context
	logger          *slog.Logger
	shutdownTimeout time.Duration
	hooks           []func(context.Context) error
	onListen        func(net.Addr)
}

// Run serves the app on addr until SIGINT, SIGTERM or the WithContext
// context ends, then shuts down gracefully.
func (a *App) Run(addr string, opts ...RunOption) error {
	s := &server{
		ctx:             context.Background(),
		logger:          a.logger,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s.serve(addr, a)
}

func (s *server) serve(addr string, h http.Handler) error {
	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if s.onListen != nil {
		s.onListen(ln.Addr())
	}

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("address", ln.Addr().String()))
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	errs := []error{srv.Shutdown(shutdownCtx)}
	for _, hook := range s.hooks {
		if err := hook(shutdownCtx); err != nil {
			s.logger.Error("shutdown hook failed", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
