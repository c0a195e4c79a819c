package mailer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// Template is an email body template with its YAML front matter split off.
type Template struct {
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits content into front matter metadata and body.
// Content without a leading "---" is returned as body with empty metadata.
func ParseTemplate(content []byte) (*Template, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return &Template{
			Metadata: make(map[string]any),
			Body:     string(content),
		}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelimiter), "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, frontmatterDelimiter)
	if end == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	head := rest[:end]
	body := trimLeadingNewline(rest[end+len(frontmatterDelimiter):])

	metadata := make(map[string]any)
	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
		if metadata == nil {
			metadata = make(map[string]any)
		}
	}

	return &Template{
		Metadata: metadata,
		Body:     string(body),
	}, nil
}

// Subject renders the "subject" front matter key as a text/template with data.
// Keys are matched case-insensitively. Returns ErrNoSubject if the key is absent.
func (t *Template) Subject(data any) (string, error) {
	raw, ok := t.lookup("subject")
	if !ok {
		return "", ErrNoSubject
	}

	tmpl, err := template.New("subject").Option("missingkey=error").Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: subject: %v", ErrRenderFailed, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: subject: %v", ErrRenderFailed, err)
	}

	// Header injection guard: a subject is a single line.
	subject := strings.Join(strings.Fields(buf.String()), " ")
	if subject == "" {
		return "", ErrNoSubject
	}
	return subject, nil
}

func (t *Template) lookup(key string) (string, bool) {
	for k, v := range t.Metadata {
		if strings.EqualFold(k, key) {
			s, ok := v.(string)
			return s, ok && s != ""
		}
	}
	return "", false
}

func trimLeadingNewline(b []byte) []byte {
	switch {
	case bytes.HasPrefix(b, []byte("\r\n")):
		return b[2:]
	case bytes.HasPrefix(b, []byte("\n")):
		return b[1:]
	}
	return b
}
