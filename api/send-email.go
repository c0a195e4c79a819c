// Package handler is the serverless entry point. The platform routes
// /api/send-email to Handler.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/contactform"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

var (
	once     sync.Once
	app      http.Handler
	flush    bool
	setupErr error
)

func setup() {
	app, flush, setupErr = build()
}

// build reads the environment and assembles the production app. A bad mail
// setting does not fail the build: CORS and validation keep answering and
// valid submissions get the configuration error.
func build() (http.Handler, bool, error) {
	cfg, cfgErr := contactform.LoadConfig()
	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	opts := []contactform.Option{contactform.WithLogger(log)}
	if cfgErr != nil {
		log.Error("load config", slog.Any("error", cfgErr))
		opts = append(opts, contactform.WithMailUnavailable(cfgErr))
	}

	h, err := contactform.NewHandler(cfg, contactform.Production, opts...)
	if err != nil {
		log.Error("build handler", slog.Any("error", err))
		return nil, false, err
	}
	return h, cfg.Log.Sentry.DSN != "", nil
}

// Handler serves the send-email function. Configuration is read on the
// first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)

	if setupErr != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     false,
			"error":       "Error interno del servidor",
			"environment": contactform.Production.String(),
		})
		return
	}

	app.ServeHTTP(w, r)

	// The instance may be frozen right after the response.
	if flush {
		logger.Flush(2 * time.Second)
	}
}
