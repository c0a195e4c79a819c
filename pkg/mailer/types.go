package mailer

import (
	"maps"
	"net/mail"
	"slices"
	"strings"
)

// TagCategory is the tag used by providers that accept a single tag per message.
const TagCategory = "category"

// Tags are name/value labels attached to a message for provider-side filtering.
type Tags map[string]string

// Keys returns the tag names in sorted order.
func (t Tags) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name" <email> if name is provided, otherwise just email.
// Non-ASCII display names are Q-encoded.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return (&mail.Address{Name: name, Address: email}).String()
}

// AddressOf extracts the bare address from an RFC 5322 address string.
// Returns the input trimmed when it cannot be parsed.
func AddressOf(s string) string {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return addr.Address
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags/categories
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text alternative
	From    string            // Sender, "Name <addr>" or bare address
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
	CC      []string          // Carbon copy recipients
	BCC     []string          // Blind carbon copy recipients
}
