package contact

// Deployment identifies which entry point serves the form. It drives the
// subject prefix, banners, sender display name and CORS allow-list.
type Deployment int

const (
	// Production is the serverless function deployment.
	Production Deployment = iota
	// Development is the standalone local server.
	Development
)

var (
	productionOrigins = []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"https://tu-dominio.com",
		"https://email-staging-moneta.vercel.app",
	}
	developmentOrigins = []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5500",
		"https://tu-dominio.com",
	}
)

// String returns the value reported in the "environment" response field.
func (d Deployment) String() string {
	if d == Development {
		return "development"
	}
	return "production"
}

// Local reports whether messages should be marked as coming from local development.
func (d Deployment) Local() bool {
	return d == Development
}

// AllowedOrigins returns the default CORS allow-list.
func (d Deployment) AllowedOrigins() []string {
	if d == Development {
		return append([]string(nil), developmentOrigins...)
	}
	return append([]string(nil), productionOrigins...)
}

// AllowCredentials reports whether CORS responses allow credentials.
func (d Deployment) AllowCredentials() bool {
	return d == Development
}

// FromName is the display name used in the From header.
func (d Deployment) FromName(siteName string) string {
	if d == Development {
		return "Formulario de Contacto [LOCAL]"
	}
	if siteName == "" {
		return "Formulario de Contacto"
	}
	return "Formulario de Contacto " + siteName
}

// SuccessMessage is the "message" field of a successful send.
func (d Deployment) SuccessMessage() string {
	if d == Development {
		return "Correo enviado exitosamente desde desarrollo local"
	}
	return "Correo enviado exitosamente"
}

// ParseDeployment maps "development"/"dev"/"local" to Development and
// everything else to Production.
func ParseDeployment(s string) Deployment {
	switch s {
	case "development", "dev", "local":
		return Development
	default:
		return Production
	}
}
