package emails_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/daybook/internal/emails"
	"github.com/dmitrymomot/daybook/pkg/mailer"
)

func TestAllTemplatesParse(t *testing.T) {
	t.Parallel()

	names, err := fs.Glob(emails.FS, "*.md")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		content, err := fs.ReadFile(emails.FS, name)
		require.NoError(t, err)

		tmpl, err := mailer.ParseTemplate(content)
		require.NoError(t, err, name)
		assert.NotEmpty(t, tmpl.Metadata["Subject"], "%s must declare a Subject", name)
	}
}

func TestDailyReminderRenders(t *testing.T) {
	t.Parallel()

	renderer := mailer.NewRenderer(emails.FS)

	result, err := renderer.Render(emails.LayoutBase, emails.TemplateDailyReminder, map[string]string{
		"Name":   "Robin",
		"AppURL": "https://daybook.example",
	})
	require.NoError(t, err)

	// Subject stays raw in metadata; the mailer templates it at send time.
	assert.Equal(t, "Time to write, {{.Name}}", result.Metadata["Subject"])

	assert.Contains(t, result.HTML, "<strong>Robin</strong>")
	assert.Contains(t, result.HTML, `href="https://daybook.example/journal"`)
	assert.Contains(t, result.HTML, `class="btn"`)
	assert.Contains(t, result.HTML, "<!DOCTYPE html>")
	assert.Contains(t, result.Text, "Robin")
}

func TestContactSubmissionRenders(t *testing.T) {
	t.Parallel()

	renderer := mailer.NewRenderer(emails.FS)

	result, err := renderer.Render(emails.LayoutBase, emails.TemplateContactSubmission, map[string]string{
		"Name":     "Robin Hale",
		"Email":    "robin@example.com",
		"Ref":      "CT-7F3K9QD2",
		"Message":  "Love the quiet design.",
		"AdminURL": "https://daybook.example/admin/inbox",
	})
	require.NoError(t, err)

	assert.Equal(t, "New contact message {{.Ref}}", result.Metadata["Subject"])

	assert.Contains(t, result.HTML, "robin@example.com")
	assert.Contains(t, result.HTML, "<blockquote>")
	assert.Contains(t, result.HTML, "Love the quiet design.")
	assert.Contains(t, result.HTML, `href="https://daybook.example/admin/inbox"`)
	assert.Contains(t, result.Text, "CT-7F3K9QD2")
}
