package contact_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/internal/contact"
)

var fixedNow = time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)

func newComposer(t *testing.T, d contact.Deployment, id contact.Identity) *contact.Composer {
	t.Helper()

	c, err := contact.NewComposer(d, id, contact.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return c
}

func TestComposer_Production(t *testing.T) {
	t.Parallel()

	c := newComposer(t, contact.Production, contact.Identity{
		SiteName:  "GPO Magno",
		Sender:    "ventas@gpomagno.com.mx",
		Recipient: "contacto@gpomagno.com.mx",
	})

	email, err := c.Compose(contact.Submission{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hola\nQuisiera una cotización",
	})
	require.NoError(t, err)

	require.Equal(t, "Nuevo mensaje de contacto - Ana", email.Subject)
	require.Equal(t, `"Formulario de Contacto GPO Magno" <ventas@gpomagno.com.mx>`, email.From)
	require.Equal(t, []string{"contacto@gpomagno.com.mx"}, email.To)
	require.Equal(t, "ana@example.com", email.ReplyTo)

	require.Contains(t, email.HTML, "📧 Nuevo Mensaje de Contacto - GPO Magno")
	require.Contains(t, email.HTML, "<strong>👤 Nombre:</strong> Ana</p>")
	require.Contains(t, email.HTML, `href="mailto:ana@example.com"`)
	require.Contains(t, email.HTML, "Hola<br>Quisiera una cotización")
	require.Contains(t, email.HTML, "Este correo fue enviado desde tu formulario de contacto web")
	require.Contains(t, email.HTML, "Fecha: 7/3/2025, 9:04:05")
	require.NotContains(t, email.HTML, "Teléfono")
	require.NotContains(t, email.HTML, "DESARROLLO LOCAL")

	require.True(t, strings.HasPrefix(email.Text, "Nuevo mensaje de contacto - GPO Magno\n"))
	require.Contains(t, email.Text, "Nombre: Ana\nCorreo Electrónico: ana@example.com\n\nMensaje:\nHola\nQuisiera una cotización\n")
	require.Contains(t, email.Text, "Enviado el: 7/3/2025, 9:04:05")
	require.NotContains(t, email.Text, "Teléfono")
}

func TestComposer_Development(t *testing.T) {
	t.Parallel()

	c := newComposer(t, contact.Development, contact.Identity{
		SiteName: "GPO Magno",
		Sender:   "dev@example.com",
	})

	email, err := c.Compose(contact.Submission{
		Name:    "Luis",
		Email:   "luis@example.com",
		Phone:   "5512345678",
		Message: "Prueba",
	})
	require.NoError(t, err)

	require.Equal(t, "[LOCAL] Nuevo mensaje de contacto - Luis", email.Subject)
	require.Equal(t, `"Formulario de Contacto [LOCAL]" <dev@example.com>`, email.From)
	require.Equal(t, []string{"dev@example.com"}, email.To, "recipient falls back to sender")

	require.Contains(t, email.HTML, "📧 Nuevo Mensaje de Contacto [DESARROLLO LOCAL]")
	require.Contains(t, email.HTML, "⚠️ Este correo fue enviado desde DESARROLLO LOCAL")
	require.Contains(t, email.HTML, "<strong>📱 Teléfono:</strong>")
	require.Contains(t, email.HTML, `href="tel:5512345678"`)
	require.NotContains(t, email.HTML, "tu formulario de contacto web")

	require.True(t, strings.HasPrefix(email.Text, "[DESARROLLO LOCAL] Nuevo mensaje de contacto\n"))
	require.Contains(t, email.Text, "Correo Electrónico: luis@example.com\nTeléfono: 5512345678\n")
	require.Equal(t, "development", email.Tags["environment"])
}

func TestComposer_EscapesHTML(t *testing.T) {
	t.Parallel()

	c := newComposer(t, contact.Production, contact.Identity{SiteName: "GPO Magno", Sender: "ventas@example.com"})

	email, err := c.Compose(contact.Submission{
		Name:    "<script>alert(1)</script>",
		Email:   "ana@example.com",
		Message: "<b>negrita</b>\nlínea 2",
	})
	require.NoError(t, err)

	require.NotContains(t, email.HTML, "<script>")
	require.NotContains(t, email.HTML, "<b>negrita</b>")
	require.Contains(t, email.HTML, "&lt;script&gt;alert(1)&lt;/script&gt;")
	require.Contains(t, email.HTML, "&lt;b&gt;negrita&lt;/b&gt;<br>línea 2")

	require.Contains(t, email.Text, "Nombre: <script>alert(1)</script>")
	require.Equal(t, "Nuevo mensaje de contacto - <script>alert(1)</script>", email.Subject)
}

func TestComposer_SubjectIsSingleLine(t *testing.T) {
	t.Parallel()

	c := newComposer(t, contact.Production, contact.Identity{Sender: "ventas@example.com"})

	email, err := c.Compose(contact.Submission{
		Name:    "Ana\r\nBcc: victim@example.com",
		Email:   "ana@example.com",
		Message: "Hola",
	})
	require.NoError(t, err)
	require.NotContains(t, email.Subject, "\n")
	require.NotContains(t, email.Subject, "\r")
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation(contact.TimeZone)
	require.NoError(t, err)

	require.Equal(t, "7/3/2025, 9:04:05", contact.FormatTimestamp(fixedNow.In(loc)))
	require.Equal(t, "31/12/2024, 23:59:09", contact.FormatTimestamp(time.Date(2024, 12, 31, 23, 59, 9, 0, loc)))
}

func TestDeployment(t *testing.T) {
	t.Parallel()

	require.Equal(t, "production", contact.Production.String())
	require.Equal(t, "development", contact.Development.String())
	require.Equal(t, contact.Development, contact.ParseDeployment("development"))
	require.Equal(t, contact.Production, contact.ParseDeployment("anything"))
	require.Contains(t, contact.Production.AllowedOrigins(), "https://email-staging-moneta.vercel.app")
	require.Contains(t, contact.Development.AllowedOrigins(), "http://127.0.0.1:5500")
	require.False(t, contact.Production.AllowCredentials())
	require.True(t, contact.Development.AllowCredentials())
	require.Equal(t, "Formulario de Contacto", contact.Production.FromName(""))
}
