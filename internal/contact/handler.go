package contact

import (
	"net/http"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/metrics"
)

// SendEmailPath is the route shared by both entry points.
const SendEmailPath = "/api/send-email"

// Handler serves the send-email endpoint.
type Handler struct {
	service    *Service
	deployment Deployment
	origins    []string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAllowedOrigins replaces the deployment's default CORS allow-list.
func WithAllowedOrigins(origins ...string) HandlerOption {
	return func(h *Handler) {
		if len(origins) > 0 {
			h.origins = origins
		}
	}
}

// NewHandler creates the send-email handler.
func NewHandler(svc *Service, d Deployment, opts ...HandlerOption) *Handler {
	h := &Handler{
		service:    svc,
		deployment: d,
		origins:    d.AllowedOrigins(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers the endpoint for every method so CORS headers are set
// before the method check.
func (h *Handler) Routes(r internal.Router) {
	cors := []middlewares.CORSOption{middlewares.WithAllowOrigins(h.origins...)}
	if h.deployment.AllowCredentials() {
		cors = append(cors, middlewares.WithAllowCredentials())
	}
	r.Any(SendEmailPath, h.sendEmail, middlewares.CORS(cors...))
}

func (h *Handler) sendEmail(c internal.Context) error {
	if c.Request().Method != http.MethodPost {
		h.service.RecordRejected(metrics.OutcomeMethodNotAllowed)
		return &MethodError{Method: c.Request().Method}
	}

	sub, err := Decode(c.Request())
	if err != nil {
		h.service.RecordRejected(metrics.OutcomeInvalid)
		return err
	}

	id, err := h.service.Submit(c, sub)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success:     true,
		Message:     h.deployment.SuccessMessage(),
		MessageID:   id,
		Environment: h.deployment.String(),
	})
}
