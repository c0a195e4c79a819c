package contactform

import (
	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/internal/contact"
)

// Type aliases - public API
type (
	// App is the assembled HTTP application. It implements http.Handler.
	App = internal.App

	// Deployment selects production or development behavior.
	Deployment = contact.Deployment
)

const (
	// Production is the serverless function deployment.
	Production = contact.Production

	// Development is the standalone local server.
	Development = contact.Development
)
