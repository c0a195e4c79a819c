// Package middlewares provides the HTTP middleware used by the contact form app.
//
// # Request ID
//
// RequestID assigns an identifier to every request. It reuses X-Request-ID,
// X-Correlation-ID or X-Vercel-Id when the caller or the platform already set
// one, and generates a UUID otherwise. The id is echoed in the X-Request-ID
// response header.
//
// Pair it with RequestIDExtractor so every log line carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns panics into *PanicError values so the app error handler can
// answer with the usual JSON envelope.
//
//	internal.WithMiddleware(middlewares.Recover())
//
// # CORS
//
// CORS always writes Access-Control-Allow-Methods and Access-Control-Allow-Headers,
// echoes the Origin only when it is allowed, and answers OPTIONS requests with
// an empty 200 without calling the handler.
//
//	r.Any("/api/send-email", h.send, middlewares.CORS(
//	    middlewares.WithAllowOrigins("http://localhost:3000", "https://tu-dominio.com"),
//	))
//
// # Access log and metrics
//
// AccessLog writes one entry per request. Metrics records request counts and
// latency per chi route pattern into a *metrics.Manager.
//
//	internal.WithMiddleware(
//	    middlewares.AccessLog(),
//	    middlewares.Metrics(m),
//	)
package middlewares
