package contact

import (
	"net/http"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/middlewares"
)

// Response is the JSON envelope every endpoint answers with.
type Response struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message,omitempty"`
	MessageID          string   `json:"messageId,omitempty"`
	Error              string   `json:"error,omitempty"`
	Details            string   `json:"details,omitempty"`
	Environment        string   `json:"environment,omitempty"`
	AvailableEndpoints []string `json:"availableEndpoints,omitempty"`
}

// ErrorHandler renders handler errors as the JSON envelope. Raw error text is
// added as "details" on 500 responses only when exposeDetails is set.
func ErrorHandler(d Deployment, exposeDetails bool) internal.ErrorHandler {
	return func(c internal.Context, err error) error {
		if verr, ok := AsValidationError(err); ok {
			return c.JSON(http.StatusBadRequest, Response{Error: verr.Message})
		}
		if _, ok := AsMethodError(err); ok {
			return c.JSON(http.StatusMethodNotAllowed, Response{Error: msgMethodNotAllowed})
		}
		if cerr, ok := AsConfigError(err); ok {
			resp := Response{Error: msgConfigMissing, Environment: d.String()}
			if len(cerr.Missing) == 0 {
				resp.Error = msgConfigInvalid
				if exposeDetails && cerr.Err != nil {
					resp.Details = cerr.Err.Error()
				}
			}
			return c.JSON(http.StatusInternalServerError, resp)
		}
		if derr, ok := AsDispatchError(err); ok {
			resp := Response{Error: msgDispatchFailed, Environment: d.String()}
			if exposeDetails {
				resp.Details = derr.Err.Error()
			}
			return c.JSON(http.StatusInternalServerError, resp)
		}
		if httpErr := internal.AsHTTPError(err); httpErr != nil {
			return c.JSON(httpErr.Code, Response{Error: httpErr.Message})
		}

		// Recover already logged panics with their stack.
		if !middlewares.IsPanicError(err) {
			c.LogError("unhandled error", "error", err.Error())
		}
		resp := Response{Error: msgInternal, Environment: d.String()}
		if exposeDetails {
			resp.Details = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, resp)
	}
}

// MethodNotAllowed answers requests whose path matched but method did not.
func MethodNotAllowed(c internal.Context) error {
	return &MethodError{Method: c.Request().Method}
}
