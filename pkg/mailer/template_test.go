package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("with frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nsubject: Nuevo mensaje de contacto - {{.Name}}\ntag: contact\n---\n<p>{{.Message}}</p>\n"))
		require.NoError(t, err)
		require.Equal(t, "Nuevo mensaje de contacto - {{.Name}}", tmpl.Metadata["subject"])
		require.Equal(t, "contact", tmpl.Metadata["tag"])
		require.Equal(t, "<p>{{.Message}}</p>\n", tmpl.Body)
	})

	t.Run("without frontmatter", func(t *testing.T) {
		t.Parallel()

		content := []byte("Plain body\nwith two lines.")
		tmpl, err := ParseTemplate(content)
		require.NoError(t, err)
		require.Empty(t, tmpl.Metadata)
		require.Equal(t, string(content), tmpl.Body)
	})

	t.Run("empty frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\n---\nBody content here."))
		require.NoError(t, err)
		require.Empty(t, tmpl.Metadata)
		require.Equal(t, "Body content here.", tmpl.Body)
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\r\nsubject: Hola\r\n---\r\nCuerpo"))
		require.NoError(t, err)
		require.Equal(t, "Hola", tmpl.Metadata["subject"])
		require.Equal(t, "Cuerpo", tmpl.Body)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate(nil)
		require.NoError(t, err)
		require.Empty(t, tmpl.Body)
	})
}

func TestParseTemplate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing closing delimiter", content: "---\nsubject: x\nbody"},
		{name: "nothing after opening delimiter", content: "---\n"},
		{name: "invalid yaml", content: "---\nsubject: [unclosed\n---\nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTemplate([]byte(tt.content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
		})
	}
}

func TestTemplate_Subject(t *testing.T) {
	t.Parallel()

	t.Run("renders data", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nSubject: Nuevo mensaje de contacto - {{.Name}}\n---\nbody"))
		require.NoError(t, err)

		subject, err := tmpl.Subject(map[string]string{"Name": "Ana López"})
		require.NoError(t, err)
		require.Equal(t, "Nuevo mensaje de contacto - Ana López", subject)
	})

	t.Run("collapses line breaks", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nsubject: Hola {{.Name}}\n---\nbody"))
		require.NoError(t, err)

		subject, err := tmpl.Subject(map[string]string{"Name": "Ana\r\nBcc: x@example.com"})
		require.NoError(t, err)
		require.Equal(t, "Hola Ana Bcc: x@example.com", subject)
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("body only"))
		require.NoError(t, err)

		_, err = tmpl.Subject(nil)
		require.ErrorIs(t, err, ErrNoSubject)
	})

	t.Run("missing data key", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nsubject: Hola {{.Name}}\n---\nbody"))
		require.NoError(t, err)

		_, err = tmpl.Subject(map[string]string{})
		require.ErrorIs(t, err, ErrRenderFailed)
	})
}
