package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/contactform/internal"
)

// CORSOption configures CORS.
type CORSOption func(*corsPolicy)

// WithAllowOrigins sets the origins echoed back in Access-Control-Allow-Origin.
// "*" allows any origin.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(p *corsPolicy) {
		p.origins = slices.Clone(origins)
	}
}

// WithAllowOriginFunc decides origin membership dynamically and replaces
// the static list.
func WithAllowOriginFunc(fn func(origin string) bool) CORSOption {
	return func(p *corsPolicy) {
		p.originFunc = fn
	}
}

// WithAllowMethods replaces the default "POST, OPTIONS".
func WithAllowMethods(methods ...string) CORSOption {
	return func(p *corsPolicy) {
		p.methods = strings.Join(methods, ", ")
	}
}

// WithAllowHeaders replaces the default "Content-Type".
func WithAllowHeaders(headers ...string) CORSOption {
	return func(p *corsPolicy) {
		p.headers = strings.Join(headers, ", ")
	}
}

// WithExposeHeaders lists response headers readable by the browser.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(p *corsPolicy) {
		p.expose = strings.Join(headers, ", ")
	}
}

// WithAllowCredentials sends Access-Control-Allow-Credentials for allowed
// origins. The origin is then always echoed, never "*".
func WithAllowCredentials() CORSOption {
	return func(p *corsPolicy) {
		p.credentials = true
	}
}

// WithMaxAge sets how long browsers may cache a preflight answer.
func WithMaxAge(d time.Duration) CORSOption {
	return func(p *corsPolicy) {
		if d > 0 {
			p.maxAge = strconv.Itoa(int(d.Seconds()))
		}
	}
}

// WithPreflightStatus sets the status of OPTIONS responses. Defaults to 200.
func WithPreflightStatus(code int) CORSOption {
	return func(p *corsPolicy) {
		if code > 0 {
			p.preflightStatus = code
		}
	}
}

type corsPolicy struct {
	origins         []string
	originFunc      func(string) bool
	methods         string
	headers         string
	expose          string
	maxAge          string
	credentials     bool
	preflightStatus int
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin,
// or "" when the origin is not allowed.
func (p *corsPolicy) allowOrigin(origin string) string {
	if origin == "" {
		return ""
	}
	if p.originFunc != nil {
		if p.originFunc(origin) {
			return origin
		}
		return ""
	}
	if slices.Contains(p.origins, "*") {
		if p.credentials {
			return origin
		}
		return "*"
	}
	if slices.Contains(p.origins, origin) {
		return origin
	}
	return ""
}

func (p *corsPolicy) apply(h http.Header, origin string) {
	h.Add("Vary", "Origin")
	h.Set("Access-Control-Allow-Methods", p.methods)
	h.Set("Access-Control-Allow-Headers", p.headers)

	allowed := p.allowOrigin(origin)
	if allowed == "" {
		return
	}
	h.Set("Access-Control-Allow-Origin", allowed)
	if p.credentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
	if p.expose != "" {
		h.Set("Access-Control-Expose-Headers", p.expose)
	}
}

// CORS sets the cross-origin headers before the handler runs.
//
// The method and header lists go out on every response. The origin is only
// echoed when allowed. OPTIONS requests get an empty preflight response for
// any origin and never reach the handler.
func CORS(opts ...CORSOption) internal.Middleware {
	p := &corsPolicy{
		methods:         http.MethodPost + ", " + http.MethodOptions,
		headers:         "Content-Type",
		preflightStatus: http.StatusOK,
	}
	for _, opt := range opts {
		opt(p)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			p.apply(c.Response().Header(), c.Header("Origin"))

			if c.Request().Method != http.MethodOptions {
				return next(c)
			}
			if p.maxAge != "" {
				c.SetHeader("Access-Control-Max-Age", p.maxAge)
			}
			return c.NoContent(p.preflightStatus)
		}
	}
}
