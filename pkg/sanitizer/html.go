package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// The two bluemonday policies below cover the plain-text and
// visitor-content paths. Admin-authored rich content goes through the
// Policy engine in this package instead, which needs per-token class
// filtering and an svg subset bluemonday does not express.

// strict strips every tag; what remains is text.
var strict = sync.OnceValue(bluemonday.StrictPolicy)

// basic keeps the formatting a visitor may reasonably paste into a
// message: paragraphs, emphasis, lists, code, and nofollow links.
var basic = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br",
		"strong", "b", "em", "i",
		"ul", "ol", "li",
		"code", "pre", "blockquote",
	)
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
})

// StripHTML removes all markup and returns plain text with entities
// decoded. Use for values that must never contain HTML: entry titles,
// journal names, contact messages, excerpts.
func StripHTML(s string) string {
	return html.UnescapeString(strict().Sanitize(s))
}

// SanitizeHTML keeps basic formatting (p, a, strong, em, lists, code)
// and drops everything dangerous: scripts, event handlers, javascript:
// URLs. For visitor-supplied content; admin content goes through
// Content().Sanitize.
func SanitizeHTML(s string) string {
	return basic().Sanitize(s)
}

// SanitizeHTMLCustom applies a caller-supplied bluemonday policy. A nil
// policy passes the input through untouched.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
