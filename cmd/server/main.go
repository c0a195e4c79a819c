// Package main runs the contact form backend as a standalone server for
// local development. It loads .env when present.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/contactform"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

func main() {
	cfg, err := contactform.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, middlewares.RequestIDExtractor()).With("app", "contactform")

	log.Info("🚀 Email Backend funcionando en desarrollo local",
		slog.String("url", fmt.Sprintf("http://localhost:%d", cfg.Port)),
		slog.String("send_email", fmt.Sprintf("http://localhost:%d/api/send-email", cfg.Port)),
	)

	if err := contactform.Run(context.Background(), cfg, contactform.Development,
		contactform.WithLogger(log),
	); err != nil {
		log.Error("server error", slog.Any("error", err))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}
