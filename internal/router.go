package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is what Handler.Routes receives to register endpoints.
// Route middleware runs in the order given, after global middleware.
type Router interface {
	GET(path string, h HandlerFunc, mw ...Middleware)

	// Any matches every method. The handler rejects the ones it does not serve.
	Any(path string, h HandlerFunc, mw ...Middleware)
}

type router struct {
	mux chi.Router
	app *App
}

func (r *router) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.mux.Method(http.MethodGet, path, r.chain(h, mw))
}

func (r *router) Any(path string, h HandlerFunc, mw ...Middleware) {
	r.mux.Handle(path, r.chain(h, mw))
}

func (r *router) chain(h HandlerFunc, mw []Middleware) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return r.app.handle(h)
}
