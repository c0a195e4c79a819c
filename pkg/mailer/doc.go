// Package mailer provides a provider-agnostic email sending interface.
//
// The package separates message delivery (via providers) from message
// preparation, allowing the transport to be swapped without touching the
// code that composes emails.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Sender: Interface that email providers implement, returning the provider message ID
//   - Template: Email body with YAML front matter carrying the subject line
//   - Mailer: Validates an Email and calls a Sender under a bounded timeout
//
// Built-in providers live in sub-packages:
//
//   - mailer/smtp: authenticated SMTP relay (Outlook, Office 365, Gmail, Yahoo or custom host)
//   - mailer/resend: Resend HTTP API
//   - mailer/postmark: Postmark HTTP API
//
// # Usage
//
//	sender, err := smtp.New(smtp.Config{
//		Service:  "outlook",
//		Username: os.Getenv("EMAIL_USER"),
//		Password: os.Getenv("EMAIL_PASS"),
//	})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(sender, mailer.Config{Timeout: 15 * time.Second})
//
//	id, err := m.Send(ctx, &mailer.Email{
//		From:    mailer.Recipient("Contact form", os.Getenv("EMAIL_USER")),
//		To:      []string{"inbox@example.com"},
//		ReplyTo: "visitor@example.com",
//		Subject: "New message",
//		HTML:    "<p>Hello</p>",
//		Text:    "Hello",
//	})
//
// # Templates
//
// Templates may start with YAML front matter delimited by "---":
//
//	---
//	subject: New message from {{.Name}}
//	---
//	<p>{{.Message}}</p>
//
// ParseTemplate splits the metadata from the body; Template.Subject renders
// the subject key as a text/template and collapses it to a single line.
//
// # Error Handling
//
// Validation failures return ErrNoRecipient, ErrNoSender, ErrNoSubject or
// ErrNoContent before any provider call. Provider failures are joined with
// ErrSendFailed, and with ErrTimeout when the configured deadline expired:
//
//	if errors.Is(err, mailer.ErrTimeout) {
//		// provider did not answer in time
//	}
package mailer
