// Package internal provides the HTTP runtime shared by both deployment modes
// of the contact form relay.
//
// This package is internal. The root package wires it through NewHandler and
// Run; the contact package registers its routes through the Router interface.
//
// # Core Types
//
//   - App: owns the chi router, middleware chain, error handling and graceful shutdown
//   - Context: request/response access plus JSON helpers and request-scoped logging
//   - Router: interface handlers use to declare routes
//   - Handler: interface implemented by types that declare routes on a router
//   - HandlerFunc: signature for route handlers that return errors
//   - Middleware: wraps handlers to add cross-cutting concerns
//   - ErrorHandler: renders errors returned from handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context. The Deadline, Done, Err, and Value
// methods delegate to the underlying request context:
//
//	func (h *Handler) send(c internal.Context) error {
//	    id, err := h.svc.Submit(c, submission)
//	    ...
//	}
//
// # Error Handling
//
// A handler returns an error instead of writing a failure response. The App
// passes it to the configured ErrorHandler unless the response was already
// written. Without an ErrorHandler, HTTPError values are rendered with their
// status code and anything else becomes a plain 500.
//
// # Server Lifecycle
//
// App.Run listens, serves, and on SIGINT, SIGTERM or cancellation of the
// WithContext base context drains in-flight requests within ShutdownTimeout
// before running ShutdownHook functions in registration order.
package internal
