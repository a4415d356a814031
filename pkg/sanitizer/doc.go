// Package sanitizer is the last line of defense before admin-authored
// markup is persisted or rendered. It offers two levels:
//
// Policy-driven sanitation for rich admin content (blog posts, site
// sections, entry bodies), where the site's styling classes and inline
// SVG icons must survive but nothing else may:
//
//	clean := sanitizer.Content().Sanitize(raw)
//
// A policy is a closed allow-list of tags, per-tag attributes, per-tag
// class tokens, and URL schemes. Disallowed elements are unwrapped (the
// children are filtered and kept), except for script, style, iframe,
// object, embed, and noscript, whose content is dropped with them.
// Anchors that open in a new tab get a noopener rel token exactly once,
// keeping whatever other tokens were present. Custom policies:
//
//	policy := sanitizer.NewPolicy(
//		sanitizer.WithElements("p", "br", "strong", "em"),
//		sanitizer.WithAttrs("a", "href", "target", "rel"),
//		sanitizer.WithClasses("p", "lead"),
//	)
//
// Sanitation never fails: malformed input is parsed permissively and
// whatever cannot be safely interpreted is discarded, worst case
// yielding "". Output is stable, so re-sanitizing stored content is a
// no-op.
//
// Simpler helpers for everything that is not admin rich text:
// StripHTML reduces a value to plain text, SanitizeHTML keeps a minimal
// formatting subset for user-generated content.
package sanitizer
