package contact

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failure reasons.
const (
	ReasonRequiredFields = "required fields missing"
	ReasonEmailFormat    = "invalid email format"
	ReasonMalformedBody  = "malformed body"
)

// User-facing messages.
const (
	msgRequiredFields   = "Los campos nombre, correo electrónico y mensaje son obligatorios"
	msgEmailFormat      = "Formato de correo electrónico inválido"
	msgMalformedBody    = "El cuerpo de la solicitud no es válido"
	msgMethodNotAllowed = "Método no permitido"
	msgConfigMissing    = "Variables de entorno EMAIL_USER y EMAIL_PASS son requeridas"
	msgConfigInvalid    = "La configuración del servicio de correo no es válida"
	msgDispatchFailed   = "Error interno del servidor al enviar el correo"
	msgInternal         = "Error interno del servidor"
	msgNotFound         = "Endpoint no encontrado"
)

// ValidationError reports a submission rejected before composing (HTTP 400).
type ValidationError struct {
	Err     error
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("contact: %s: %v", e.Reason, e.Err)
	}
	return "contact: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MethodError reports a request with a method the endpoint does not serve (HTTP 405).
type MethodError struct {
	Method string
}

func (e *MethodError) Error() string {
	return "contact: method not allowed: " + e.Method
}

// ConfigError reports missing mail credentials, or a mail setup that failed
// at startup (HTTP 500). Err holds the startup failure.
type ConfigError struct {
	Missing []string
	Err     error
}

func (e *ConfigError) Error() string {
	if len(e.Missing) == 0 && e.Err != nil {
		return "contact: invalid mail configuration: " + e.Err.Error()
	}
	return "contact: missing configuration: " + strings.Join(e.Missing, ", ")
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DispatchError wraps a failure while composing or sending the message (HTTP 500).
type DispatchError struct {
	Err      error
	Provider string
}

func (e *DispatchError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("contact: dispatch via %s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("contact: dispatch: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func newValidationError(reason, message string, err error) *ValidationError {
	return &ValidationError{Reason: reason, Message: message, Err: err}
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var target *ValidationError
	ok := errors.As(err, &target)
	return target, ok
}

// AsMethodError extracts a *MethodError from err's chain.
func AsMethodError(err error) (*MethodError, bool) {
	var target *MethodError
	ok := errors.As(err, &target)
	return target, ok
}

// AsConfigError extracts a *ConfigError from err's chain.
func AsConfigError(err error) (*ConfigError, bool) {
	var target *ConfigError
	ok := errors.As(err, &target)
	return target, ok
}

// AsDispatchError extracts a *DispatchError from err's chain.
func AsDispatchError(err error) (*DispatchError, bool) {
	var target *DispatchError
	ok := errors.As(err, &target)
	return target, ok
}
