package internal

// Handler registers its routes on the router passed to Routes.
//
//	func (h *ContactHandler) Routes(r internal.Router) {
//	    r.Any("/api/send-email", h.send)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc serves a request. A returned error goes to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc. It may short-circuit by not calling next.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders an error returned by a handler or middleware.
type ErrorHandler func(Context, error) error
