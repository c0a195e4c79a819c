package contact

import (
	"net/http"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/pkg/health"
)

const bannerMessage = "🚀 Email Backend funcionando en desarrollo local"

// AvailableEndpoints is listed in 404 responses.
var AvailableEndpoints = []string{
	"GET /",
	"GET /health",
	"POST " + SendEmailPath,
}

// Banner is the body of GET /.
type Banner struct {
	Message     string            `json:"message"`
	Endpoints   map[string]string `json:"endpoints"`
	Environment string            `json:"environment"`
	Port        int               `json:"port"`
}

// InfoHandler serves the standalone server's service routes.
type InfoHandler struct {
	deployment Deployment
	port       int
	health     http.HandlerFunc
}

// NewInfoHandler creates the banner and health routes. Health options are
// passed to health.Handler after the environment.
func NewInfoHandler(d Deployment, port int, opts ...health.Option) *InfoHandler {
	opts = append([]health.Option{health.WithEnvironment(d.String())}, opts...)
	return &InfoHandler{
		deployment: d,
		port:       port,
		health:     health.Handler(opts...),
	}
}

// Routes registers GET / and GET /health.
func (h *InfoHandler) Routes(r internal.Router) {
	r.GET("/", h.banner)
	r.GET("/health", h.healthCheck)
}

func (h *InfoHandler) banner(c internal.Context) error {
	return c.JSON(http.StatusOK, Banner{
		Message: bannerMessage,
		Endpoints: map[string]string{
			"POST " + SendEmailPath: "Enviar correo",
		},
		Environment: h.deployment.String(),
		Port:        h.port,
	})
}

func (h *InfoHandler) healthCheck(c internal.Context) error {
	h.health(c.Response(), c.Request())
	return nil
}

// NotFound answers unmatched routes with the list of endpoints.
func NotFound(c internal.Context) error {
	return c.JSON(http.StatusNotFound, Response{
		Error:              msgNotFound,
		AvailableEndpoints: AvailableEndpoints,
	})
}
