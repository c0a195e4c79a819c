package contact

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"regexp"
	"strings"
)

// MaxBodySize caps the request body read by Decode.
const MaxBodySize = 64 << 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is one contact form post. Field names follow the form's wire format.
type Submission struct {
	Name    string `json:"nombre"`
	Email   string `json:"correoElectronico"`
	Phone   string `json:"numeroTelefono"`
	Message string `json:"mensaje"`
}

// Decode reads a Submission from a JSON or url-encoded request body. Values
// are kept exactly as submitted. An empty body yields an empty Submission.
func Decode(r *http.Request) (Submission, error) {
	var s Submission
	if r.Body == nil {
		return s, nil
	}
	body := http.MaxBytesReader(nil, r.Body, MaxBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		r.Body = body
		if err := r.ParseForm(); err != nil {
			return s, newValidationError(ReasonMalformedBody, msgMalformedBody, err)
		}
		s = Submission{
			Name:    r.PostForm.Get("nombre"),
			Email:   r.PostForm.Get("correoElectronico"),
			Phone:   r.PostForm.Get("numeroTelefono"),
			Message: r.PostForm.Get("mensaje"),
		}
		return s, nil
	}

	if err := json.NewDecoder(body).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Submission{}, newValidationError(ReasonMalformedBody, msgMalformedBody, err)
	}
	return s, nil
}

// Validate checks required fields first, then the email shape. A field of
// only whitespace counts as missing. The email pattern runs on the value as
// submitted, so surrounding spaces make it invalid.
func (s Submission) Validate() error {
	if blank(s.Name) || blank(s.Email) || blank(s.Message) {
		return newValidationError(ReasonRequiredFields, msgRequiredFields, nil)
	}
	if !emailPattern.MatchString(s.Email) {
		return newValidationError(ReasonEmailFormat, msgEmailFormat, nil)
	}
	return nil
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}
