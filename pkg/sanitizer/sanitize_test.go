package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/daybook/pkg/sanitizer"
)

func TestPolicy_Sanitize(t *testing.T) {
	t.Parallel()

	policy := sanitizer.Content()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps allowed structure",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: `<p>Hello <strong>world</strong></p>`,
		},
		{
			name:     "drops script with content",
			input:    `<p>before</p><script>alert(1)</script><p>after</p>`,
			expected: `<p>before</p><p>after</p>`,
		},
		{
			name:     "drops style with content",
			input:    `<style>p{display:none}</style><em>kept</em>`,
			expected: `<em>kept</em>`,
		},
		{
			name:     "unwraps disallowed element but keeps filtered children",
			input:    `<article><p>kept</p></article>`,
			expected: `<p>kept</p>`,
		},
		{
			name:     "unwraps nested unknown tags",
			input:    `<p><blink>still here</blink></p>`,
			expected: `<p>still here</p>`,
		},
		{
			name:     "filters class tokens",
			input:    `<div class="bg-pink-300 evil-class">x</div>`,
			expected: `<div class="bg-pink-300">x</div>`,
		},
		{
			name:     "omits class left with no tokens",
			input:    `<div class="evil-a evil-b">x</div>`,
			expected: `<div>x</div>`,
		},
		{
			name:     "drops disallowed attributes",
			input:    `<span onclick="steal()" data-track="1" class="highlight">x</span>`,
			expected: `<span class="highlight">x</span>`,
		},
		{
			name:     "merges noopener into existing rel",
			input:    `<a href="#" target="_blank" rel="nofollow">x</a>`,
			expected: `<a href="#" target="_blank" rel="nofollow noopener">x</a>`,
		},
		{
			name:     "adds rel when anchor targets blank without one",
			input:    `<a href="https://example.com" target="_blank">x</a>`,
			expected: `<a href="https://example.com" target="_blank" rel="noopener">x</a>`,
		},
		{
			name:     "does not duplicate an existing noopener",
			input:    `<a href="#" target="_blank" rel="noopener">x</a>`,
			expected: `<a href="#" target="_blank" rel="noopener">x</a>`,
		},
		{
			name:     "leaves rel alone without target blank",
			input:    `<a href="#" rel="nofollow">x</a>`,
			expected: `<a href="#" rel="nofollow">x</a>`,
		},
		{
			name:     "drops javascript scheme",
			input:    `<a href="javascript:alert(1)">x</a>`,
			expected: `<a>x</a>`,
		},
		{
			name:     "drops tab-obfuscated javascript scheme",
			input:    "<a href=\"jav	ascript:alert(1)\">x</a>",
			expected: `<a>x</a>`,
		},
		{
			name:     "drops entity-obfuscated javascript scheme",
			input:    `<a href="jav&#x9;ascript:alert(1)">x</a>`,
			expected: `<a>x</a>`,
		},
		{
			name:     "drops data scheme on img",
			input:    `<img src="data:image/png;base64,AAAA" alt="pic">`,
			expected: `<img alt="pic">`,
		},
		{
			name:     "keeps mailto links",
			input:    `<a href="mailto:hi@example.com">mail</a>`,
			expected: `<a href="mailto:hi@example.com">mail</a>`,
		},
		{
			name:     "keeps relative and fragment urls",
			input:    `<a href="/journal/june">j</a><a href="#top">t</a>`,
			expected: `<a href="/journal/june">j</a><a href="#top">t</a>`,
		},
		{
			name:     "uppercase markup is normalized",
			input:    `<P CLASS="lead">x</P>`,
			expected: `<p class="lead">x</p>`,
		},
		{
			name:     "uppercase scheme is still matched",
			input:    `<a href="HTTPS://example.com">x</a>`,
			expected: `<a href="HTTPS://example.com">x</a>`,
		},
		{
			name:     "drops comments",
			input:    `<!-- admin note --><p>x</p>`,
			expected: `<p>x</p>`,
		},
		{
			name:     "drops iframe and embed entirely",
			input:    `<iframe src="https://evil.com">fallback</iframe><embed src="x.swf">ok`,
			expected: `ok`,
		},
		{
			name:     "svg with event handler keeps shape only",
			input:    `<svg onload="evil()"><circle cx="1" cy="1" r="1"></circle></svg>`,
			expected: `<svg><circle cx="1" cy="1" r="1"></circle></svg>`,
		},
		{
			name:     "entities stay encoded",
			input:    `<p>a &amp; b</p>`,
			expected: `<p>a &amp; b</p>`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := policy.Sanitize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPolicy_SanitizeIdempotent(t *testing.T) {
	t.Parallel()

	policy := sanitizer.Content()

	inputs := []string{
		`<p>plain</p>`,
		`<div class="bg-pink-300 evil-class"><p>nested</p></div>`,
		`<a href="#" target="_blank" rel="nofollow">x</a>`,
		`<script>alert(1)</script>`,
		`<p>unclosed <em>emphasis`,
		`<<<>>>`,
		`<a href=">`,
		`plain text with < angle & amp`,
		`<table><td>fostered</td></table>`,
		`<textarea><script>x</script></textarea>`,
		`<svg><foreignObject><img src=x onerror=evil()></foreignObject></svg>`,
		"\x00\x01 control characters",
		`<p title="a&quot;b">quotes</p>`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			var once string
			require.NotPanics(t, func() { once = policy.Sanitize(input) })
			again := policy.Sanitize(once)
			assert.Equal(t, once, again, "sanitize must be stable under re-sanitation")
		})
	}
}

func TestPolicy_SanitizeNoScriptEscape(t *testing.T) {
	t.Parallel()

	policy := sanitizer.Content()

	inputs := []string{
		`<script>alert(1)</script>`,
		`<SCRIPT SRC="https://evil.com/x.js"></SCRIPT>`,
		`<div><script>nested()</script></div>`,
		`<svg><script>foreign()</script></svg>`,
		`<noscript><script>x</script></noscript>`,
		`<template><script>x</script></template>`,
		`<p>&lt;script&gt;encoded&lt;/script&gt;</p>`,
		`<xmp><script>raw</script></xmp>`,
	}

	for _, input := range inputs {
		out := policy.Sanitize(input)
		assert.NotContains(t, out, "<script", "input %q leaked script markup: %q", input, out)
	}
}

func TestPolicy_SanitizeRelMergeExactlyOnce(t *testing.T) {
	t.Parallel()

	out := sanitizer.Content().Sanitize(`<a href="#" target="_blank" rel="nofollow">x</a>`)

	assert.Equal(t, 1, strings.Count(out, "noopener"))
	assert.Equal(t, 1, strings.Count(out, "nofollow"))
}

func TestPolicy_SanitizeIconMarkupUntouched(t *testing.T) {
	t.Parallel()

	// The icon set renders in exactly this shape; the content policy
	// must pass it through byte for byte.
	icon := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="icon"><path d="M20.8 4.6a5.5 5.5 0 0 0-7.8 0L12 5.7l-1-1.1a5.5 5.5 0 0 0-7.8 7.8l1 1L12 21l7.8-7.6 1-1a5.5 5.5 0 0 0 0-7.8z"></path></svg>`

	assert.Equal(t, icon, sanitizer.Content().Sanitize(icon))
}

func TestNewPolicy(t *testing.T) {
	t.Parallel()

	t.Run("empty policy keeps only text", func(t *testing.T) {
		t.Parallel()

		p := sanitizer.NewPolicy()
		assert.Equal(t, "just text", p.Sanitize(`<p>just <b>text</b></p>`))
	})

	t.Run("attrs imply the element", func(t *testing.T) {
		t.Parallel()

		p := sanitizer.NewPolicy(sanitizer.WithAttrs("a", "href"))
		assert.Equal(t, `<a href="https://example.com">x</a>`,
			p.Sanitize(`<a href="https://example.com" target="_blank">x</a>`))
	})

	t.Run("scheme override", func(t *testing.T) {
		t.Parallel()

		p := sanitizer.NewPolicy(
			sanitizer.WithAttrs("a", "href"),
			sanitizer.WithSchemes("https"),
		)
		assert.Equal(t, `<a>x</a>`, p.Sanitize(`<a href="http://example.com">x</a>`))
		assert.Equal(t, `<a href="https://example.com">x</a>`, p.Sanitize(`<a href="https://example.com">x</a>`))
	})

	t.Run("classes imply the element and class attr", func(t *testing.T) {
		t.Parallel()

		p := sanitizer.NewPolicy(sanitizer.WithClasses("div", "note"))
		assert.Equal(t, `<div class="note">x</div>`, p.Sanitize(`<div class="note extra" id="z">x</div>`))
	})
}
