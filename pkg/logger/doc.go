// Package logger provides structured logging with context extraction and Sentry integration.
//
// This package extends the standard library's log/slog with two key capabilities:
// automatic context-based attribute injection and optional Sentry error reporting.
// It is designed for production applications that need consistent, enriched logs
// with minimal boilerplate.
//
// # Overview
//
// Context extractors inject request-scoped values such as request IDs into
// every record. Attributes named password, email_pass, api_key or token are
// written as "[REDACTED]". When Sentry is configured, records go to stdout
// and Sentry, and a Sentry failure does not drop the stdout line.
//
// # Basic Usage
//
// Create a logger with context extractors:
//
//	log := logger.New(logger.Config{Level: "info"},
//		logger.ContextValue(requestIDKey{}, "request_id"),
//	)
//
//	// request_id is automatically included when present in ctx
//	log.InfoContext(ctx, "email dispatched", slog.String("message_id", id))
//	// Output: {"level":"INFO","msg":"email dispatched","message_id":"...","request_id":"abc-123"}
//
// # Sentry Integration
//
// When Config.Sentry.DSN is set, New forwards records to Sentry as well:
// errors become Sentry issues, warnings and errors are stored as Sentry logs.
// Without a DSN only stdout is used. Call Flush during shutdown so buffered
// events are delivered:
//
//	defer logger.Flush(2 * time.Second)
//
// # Testing
//
// NewWithWriter writes JSON to any io.Writer, and NewNope discards everything.
package logger
