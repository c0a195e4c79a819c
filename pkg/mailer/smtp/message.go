package smtp

import (
	"net/mail"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

// buildMessage converts email into a gomail message with a plain-text part
// and an HTML alternative.
func buildMessage(email *mailer.Email, from, messageID string, now time.Time) *gomail.Message {
	m := gomail.NewMessage()

	setAddress(m, "From", from)
	m.SetHeader("To", email.To...)
	if len(email.CC) > 0 {
		m.SetHeader("Cc", email.CC...)
	}
	if len(email.BCC) > 0 {
		m.SetHeader("Bcc", email.BCC...)
	}
	// Reply-To carries the submitter address as validated upstream. Stricter
	// RFC 5322 parsing would reject shapes like "juan..perez@gmail.com".
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", headerSanitizer.Replace(email.ReplyTo))
	}
	m.SetHeader("Subject", email.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetDateHeader("Date", now)

	for k, v := range email.Headers {
		m.SetHeader(headerSanitizer.Replace(k), headerSanitizer.Replace(v))
	}

	if email.Text != "" {
		m.SetBody("text/plain", email.Text)
		m.AddAlternative("text/html", email.HTML)
	} else {
		m.SetBody("text/html", email.HTML)
	}
	return m
}

// setAddress writes a "Name <addr>" value through gomail's address
// formatting, falling back to the raw value when it does not parse.
func setAddress(m *gomail.Message, field, value string) {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		m.SetHeader(field, value)
		return
	}
	m.SetAddressHeader(field, addr.Address, addr.Name)
}

// newMessageID builds an RFC 5322 Message-ID on the sender's domain.
func newMessageID(id, from, fallbackDomain string) string {
	domain := fallbackDomain
	addr := mailer.AddressOf(from)
	if at := strings.LastIndex(addr, "@"); at >= 0 {
		domain = addr[at+1:]
	}
	return "<" + id + "@" + domain + ">"
}
