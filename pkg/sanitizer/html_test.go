package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/daybook/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want string
	}{
		{"keeps plain text", "woke up before the alarm", "woke up before the alarm"},
		{"empty input", "", ""},
		{"drops tags keeps text", `<p>Slept <strong>badly</strong></p>`, "Slept badly"},
		{"nested wrappers", `<div><p>quiet <span>morning</span></p></div>`, "quiet morning"},
		{"script dies with its body", `<p>Salut</p><script>alert('xss')</script>`, "Salut"},
		{"style dies with its body", `Morning <style>.entry{display:none}</style>pages`, "Morning pages"},
		{"iframe dropped", `<iframe src="https://evil.example"></iframe>still here`, "still here"},
		{"image leaves nothing behind", `<img src="x" onerror="alert('xss')">`, ""},
		{"link text survives without the link", `<a href="javascript:alert('xss')">my day</a>`, "my day"},
		{"entities decode to text", `Bread &amp; Butter &lt;3`, "Bread & Butter <3"},
		{"title pasted from a rich editor", `<h2 class="font-bold">Monday &mdash; a good day</h2>`, "Monday — a good day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.StripHTML(tt.give))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want string
	}{
		{"empty input", "", ""},
		{
			"keeps paragraphs and emphasis",
			`<p>Wrote <strong>three</strong> pages</p>`,
			`<p>Wrote <strong>three</strong> pages</p>`,
		},
		{
			"keeps lists",
			`<ul><li>tea</li><li>toast</li></ul>`,
			`<ul><li>tea</li><li>toast</li></ul>`,
		},
		{
			"keeps code blocks",
			`<pre><code>go test ./...</code></pre>`,
			`<pre><code>go test ./...</code></pre>`,
		},
		{
			"keeps blockquotes",
			`<blockquote>be kind to your drafts</blockquote>`,
			`<blockquote>be kind to your drafts</blockquote>`,
		},
		{"keeps line breaks", `one<br>two`, `one<br>two`},
		{
			"links gain nofollow",
			`<a href="https://example.com">link</a>`,
			`<a href="https://example.com" rel="nofollow">link</a>`,
		},
		{
			"javascript links reduce to text",
			`<a href="javascript:alert('xss')">click</a>`,
			"click",
		},
		{
			"script dropped with its body",
			`<p>ok</p><script>alert('xss')</script>`,
			`<p>ok</p>`,
		},
		{"event handlers dropped", `<p onclick="alert('xss')">content</p>`, `<p>content</p>`},
		{"style attribute dropped", `<p style="color:red">content</p>`, `<p>content</p>`},
		// The class survives on a div under Content(); here it does not.
		{"class attribute dropped", `<p class="bg-pink-300">content</p>`, `<p>content</p>`},
		{"divs unwrap", `<div>content</div>`, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.SanitizeHTML(tt.give))
		})
	}
}

func TestSanitizeHTMLCustom(t *testing.T) {
	t.Parallel()

	t.Run("caller policy decides", func(t *testing.T) {
		t.Parallel()

		policy := bluemonday.NewPolicy()
		policy.AllowElements("img")
		policy.AllowAttrs("src", "alt").OnElements("img")

		got := sanitizer.SanitizeHTMLCustom(
			`<img src="photo.jpg" alt="photo" onerror="alert('xss')">`, policy)
		assert.Equal(t, `<img src="photo.jpg" alt="photo">`, got)
	})

	t.Run("nil policy is a passthrough", func(t *testing.T) {
		t.Parallel()

		input := `<script>alert('xss')</script>`
		assert.Equal(t, input, sanitizer.SanitizeHTMLCustom(input, nil))
	})
}
