package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		metadata map[string]any
		body     string
	}{
		{
			name: "with frontmatter",
			content: `---
Subject: Daily reminder
From: Daybook
---
# Your journal is waiting

Write today's entry.
`,
			metadata: map[string]any{"Subject": "Daily reminder", "From": "Daybook"},
			body:     "# Your journal is waiting\n\nWrite today's entry.\n",
		},
		{
			name:     "without frontmatter",
			content:  "# Plain markdown\n\nNo metadata here.",
			metadata: map[string]any{},
			body:     "# Plain markdown\n\nNo metadata here.",
		},
		{
			name:     "empty frontmatter",
			content:  "---\n---\nBody content here.",
			metadata: map[string]any{},
			body:     "Body content here.",
		},
		{
			name:     "whitespace-only frontmatter",
			content:  "---\n\n---\nBody content.",
			metadata: map[string]any{},
			body:     "Body content.",
		},
		{
			name:     "unix line endings",
			content:  "---\nSubject: Test\n---\nBody",
			metadata: map[string]any{"Subject": "Test"},
			body:     "Body",
		},
		{
			name:     "windows line endings",
			content:  "---\r\nSubject: Test\r\n---\r\nBody",
			metadata: map[string]any{"Subject": "Test"},
			body:     "Body",
		},
		{
			name:     "empty body",
			content:  "---\nSubject: Test\n---\n",
			metadata: map[string]any{"Subject": "Test"},
			body:     "",
		},
		{
			name:     "numeric metadata",
			content:  "---\nSubject: Streak update\nDays: 30\nRate: 0.97\n---\nBody",
			metadata: map[string]any{"Subject": "Streak update", "Days": 30, "Rate": 0.97},
			body:     "Body",
		},
		{
			name:     "empty content",
			content:  "",
			metadata: map[string]any{},
			body:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			require.NoError(t, err)
			require.NotNil(t, tmpl)
			assert.Equal(t, tt.metadata, tmpl.Metadata)
			assert.Equal(t, tt.body, tmpl.Body)
		})
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing closing delimiter",
			content: "---\nSubject: Test\nBody without closing delimiter",
		},
		{
			name:    "nothing after opening delimiter",
			content: "---",
		},
		{
			name:    "invalid yaml",
			content: "---\nSubject: Test\nBroken: [unclosed\n---\nBody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
			assert.Nil(t, tmpl)
		})
	}
}

func TestParseTemplate_NestedMetadata(t *testing.T) {
	t.Parallel()

	content := []byte(`---
Subject: New contact submission
Tags:
  - contact
  - admin
Settings:
  tracking: true
---
A visitor wrote in.`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	assert.Equal(t, "New contact submission", tmpl.Metadata["Subject"])

	tags, ok := tmpl.Metadata["Tags"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"contact", "admin"}, tags)

	settings, ok := tmpl.Metadata["Settings"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, settings["tracking"])

	assert.Equal(t, "A visitor wrote in.", tmpl.Body)
}

func TestParseTemplate_BodyWithDelimiters(t *testing.T) {
	t.Parallel()

	content := []byte("---\nSubject: Code Example\n---\nFrontmatter looks like:\n\n```\n---\nkey: value\n---\n```\n")

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	assert.Equal(t, "Code Example", tmpl.Metadata["Subject"])
	assert.Contains(t, tmpl.Body, "key: value")
	assert.Contains(t, tmpl.Body, "---")
}
