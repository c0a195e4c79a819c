package contact

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
	_ "time/tzdata"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

//go:embed templates/*
var templateFS embed.FS

// TimeZone is the zone the message timestamp is rendered in.
const TimeZone = "America/Mexico_City"

// Identity holds the addresses a composed message is sent from and to.
type Identity struct {
	// SiteName appears in the production sender name and heading.
	SiteName string
	// Sender is the outbound account address (EMAIL_USER).
	Sender string
	// Recipient receives the message. Falls back to Sender when empty.
	Recipient string
}

// Composer turns a validated Submission into a ready-to-send email.
type Composer struct {
	deployment Deployment
	identity   Identity
	subject    *mailer.Template
	html       *htmltemplate.Template
	text       *texttemplate.Template
	location   *time.Location
	now        func() time.Time
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithClock overrides the time source used for the message timestamp.
func WithClock(now func() time.Time) ComposerOption {
	return func(c *Composer) {
		if now != nil {
			c.now = now
		}
	}
}

// messageData is shared by the subject, HTML and text templates.
type messageData struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	Date     string
	SiteName string
	Local    bool
}

// NewComposer parses the embedded templates for the given deployment.
func NewComposer(deployment Deployment, identity Identity, opts ...ComposerOption) (*Composer, error) {
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		return nil, fmt.Errorf("contact: load time zone: %w", err)
	}

	rawHTML, err := templateFS.ReadFile("templates/message.html")
	if err != nil {
		return nil, fmt.Errorf("contact: read html template: %w", err)
	}
	page, err := mailer.ParseTemplate(rawHTML)
	if err != nil {
		return nil, fmt.Errorf("contact: parse html template: %w", err)
	}
	html, err := htmltemplate.New("message.html").
		Funcs(htmltemplate.FuncMap{"lines": lines}).
		Parse(page.Body)
	if err != nil {
		return nil, fmt.Errorf("contact: parse html template: %w", err)
	}

	text, err := texttemplate.ParseFS(templateFS, "templates/message.txt")
	if err != nil {
		return nil, fmt.Errorf("contact: parse text template: %w", err)
	}

	c := &Composer{
		deployment: deployment,
		identity:   identity,
		subject:    page,
		html:       html,
		text:       text,
		location:   loc,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Compose renders both bodies and fills in the envelope.
func (c *Composer) Compose(s Submission) (*mailer.Email, error) {
	data := messageData{
		Name:     s.Name,
		Email:    s.Email,
		Phone:    s.Phone,
		Message:  s.Message,
		Date:     FormatTimestamp(c.now().In(c.location)),
		SiteName: c.identity.SiteName,
		Local:    c.deployment.Local(),
	}

	subject, err := c.subject.Subject(data)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	if err := c.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("%w: html: %v", mailer.ErrRenderFailed, err)
	}

	var text bytes.Buffer
	if err := c.text.ExecuteTemplate(&text, "message.txt", data); err != nil {
		return nil, fmt.Errorf("%w: text: %v", mailer.ErrRenderFailed, err)
	}

	recipient := c.identity.Recipient
	if recipient == "" {
		recipient = c.identity.Sender
	}

	return &mailer.Email{
		From:    mailer.Recipient(c.deployment.FromName(c.identity.SiteName), c.identity.Sender),
		To:      []string{recipient},
		ReplyTo: s.Email,
		Subject: subject,
		HTML:    html.String(),
		Text:    text.String(),
		Tags: mailer.Tags{
			mailer.TagCategory: "contact_form",
			"environment":      c.deployment.String(),
		},
	}, nil
}

// FormatTimestamp renders t the way es-ES locales print a date and time,
// e.g. "7/3/2025, 9:05:01".
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d, %d:%02d:%02d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}

func lines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
