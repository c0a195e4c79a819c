// Package health provides the JSON health endpoint of the standalone server.
//
// [Handler] reports {status, timestamp, environment} and optionally runs a set
// of named [Checks] in parallel under a timeout:
//
//	r.Get("/health", health.Handler(
//	    health.WithEnvironment("development"),
//	    health.WithChecks(health.Checks{
//	        "mail": mailConfigured,
//	    }),
//	))
//
// A failing check turns the status into [StatusUnavailable] and the response
// code into 503.
package health
