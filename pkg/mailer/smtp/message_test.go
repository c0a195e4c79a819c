package smtp

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

func render(t *testing.T, email *mailer.Email) *mail.Message {
	t.Helper()

	m := buildMessage(email, email.From, "<id-1@example.com>", time.Date(2025, 3, 7, 9, 5, 3, 0, time.UTC))
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	msg, err := mail.ReadMessage(&buf)
	require.NoError(t, err)
	return msg
}

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	msg := render(t, &mailer.Email{
		From:    mailer.Recipient("Formulario de Contacto", "forms@example.com"),
		To:      []string{"inbox@example.com"},
		BCC:     []string{"hidden@example.com"},
		ReplyTo: "ana@example.com",
		Subject: "Nuevo mensaje de contacto - Ana Peña",
		HTML:    "<p>Hola<br>mundo</p>",
		Text:    "Hola\nmundo",
		Headers: map[string]string{"X-Origin": "contact\r\nBcc: evil@example.com"},
	})

	require.Equal(t, "<id-1@example.com>", msg.Header.Get("Message-ID"))
	require.Equal(t, "ana@example.com", msg.Header.Get("Reply-To"))
	require.Equal(t, "contactBcc: evil@example.com", msg.Header.Get("X-Origin"))
	require.Empty(t, msg.Header.Get("Bcc"))

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	require.Equal(t, "Nuevo mensaje de contacto - Ana Peña", subject)

	from, err := msg.Header.AddressList("From")
	require.NoError(t, err)
	require.Equal(t, "Formulario de Contacto", from[0].Name)
	require.Equal(t, "forms@example.com", from[0].Address)

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	var types, bodies []string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, err := io.ReadAll(p)
		require.NoError(t, err)
		ct, _, err := mime.ParseMediaType(p.Header.Get("Content-Type"))
		require.NoError(t, err)
		types = append(types, ct)
		bodies = append(bodies, string(b))
	}

	require.Equal(t, []string{"text/plain", "text/html"}, types)
	require.Equal(t, "Hola\nmundo", strings.ReplaceAll(bodies[0], "\r\n", "\n"))
	require.Equal(t, "<p>Hola<br>mundo</p>", bodies[1])
}

func TestBuildMessage_ReplyToKeepsValidatedAddress(t *testing.T) {
	t.Parallel()

	for _, addr := range []string{"juan..perez@gmail.com", "ana.@example.com", "ana@example.com."} {
		msg := render(t, &mailer.Email{
			From:    "forms@example.com",
			To:      []string{"inbox@example.com"},
			ReplyTo: addr,
			Subject: "x",
			HTML:    "<p>x</p>",
		})
		require.Equal(t, addr, msg.Header.Get("Reply-To"))
	}
}

func TestBuildMessage_HTMLOnly(t *testing.T) {
	t.Parallel()

	msg := render(t, &mailer.Email{
		From:    "forms@example.com",
		To:      []string{"inbox@example.com"},
		Subject: "x",
		HTML:    "<p>x</p>",
	})

	mediaType, _, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "text/html", mediaType)
}

func TestNewMessageID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<abc@example.com>", newMessageID("abc", `"Forms" <forms@example.com>`, "smtp.relay"))
	require.Equal(t, "<abc@smtp.relay>", newMessageID("abc", "", "smtp.relay"))
}
