package sanitizer

import "sync"

// Policy is an immutable allow-list for HTML sanitation: allowed tag
// names, per-tag allowed attributes, per-tag allowed class tokens, and
// allowed URL schemes. Build one with NewPolicy at startup and share it;
// a Policy is read-only and safe for concurrent use.
//
// Tag and attribute names must match the parser's normalized form:
// lowercase for HTML, the adjusted camelCase names inside SVG content
// (viewBox, clipPath).
type Policy struct {
	tags    map[string]map[string]bool
	classes map[string]map[string]bool
	schemes map[string]bool
}

// PolicyOption configures a Policy under construction.
type PolicyOption func(*Policy)

// WithElements allows the named tags with no attributes.
func WithElements(tags ...string) PolicyOption {
	return func(p *Policy) {
		for _, tag := range tags {
			if p.tags[tag] == nil {
				p.tags[tag] = map[string]bool{}
			}
		}
	}
}

// WithAttrs allows the named attributes on tag, allowing the tag itself
// as a side effect.
func WithAttrs(tag string, attrs ...string) PolicyOption {
	return func(p *Policy) {
		if p.tags[tag] == nil {
			p.tags[tag] = map[string]bool{}
		}
		for _, a := range attrs {
			p.tags[tag][a] = true
		}
	}
}

// WithClasses allows the named class tokens on tag. The class attribute
// is filtered token by token: tokens outside this set are dropped, and
// an attribute left with no tokens is omitted. Allows the tag and its
// class attribute as a side effect.
func WithClasses(tag string, tokens ...string) PolicyOption {
	return func(p *Policy) {
		if p.tags[tag] == nil {
			p.tags[tag] = map[string]bool{}
		}
		p.tags[tag]["class"] = true
		if p.classes[tag] == nil {
			p.classes[tag] = map[string]bool{}
		}
		for _, tok := range tokens {
			p.classes[tag][tok] = true
		}
	}
}

// WithSchemes replaces the allowed URL scheme set. The default allows
// http, https, and mailto. Relative URLs and bare fragments always
// pass; URLs with any other scheme, or that fail to parse, are dropped.
func WithSchemes(schemes ...string) PolicyOption {
	return func(p *Policy) {
		p.schemes = make(map[string]bool, len(schemes))
		for _, s := range schemes {
			p.schemes[s] = true
		}
	}
}

// NewPolicy builds an immutable policy from the given options.
func NewPolicy(opts ...PolicyOption) *Policy {
	p := &Policy{
		tags:    map[string]map[string]bool{},
		classes: map[string]map[string]bool{},
		schemes: map[string]bool{"http": true, "https": true, "mailto": true},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// contentPolicy is the policy for admin-authored rich content: the blog
// editor, site sections, and journal entry bodies. Text structure, safe
// links and images, the curated utility-class palette the site styles
// callouts with, and the inline SVG subset the icon set renders.
var contentPolicy = sync.OnceValue(func() *Policy {
	return NewPolicy(
		WithElements(
			"p", "br", "hr",
			"h2", "h3", "h4",
			"strong", "b", "em", "i", "u", "s",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"figure", "figcaption",
		),
		WithAttrs("a", "href", "title", "target", "rel"),
		WithAttrs("img", "src", "alt", "width", "height"),

		WithClasses("div",
			"bg-pink-100", "bg-pink-200", "bg-pink-300",
			"bg-purple-100", "bg-purple-200",
			"bg-amber-100", "bg-emerald-100",
			"border", "border-pink-200", "border-purple-200",
			"rounded-lg", "shadow-sm",
			"p-4", "my-4", "text-center",
			"callout", "note",
		),
		WithClasses("span",
			"highlight", "font-medium",
			"text-pink-600", "text-purple-600", "text-emerald-600",
		),
		WithClasses("p", "lead", "text-sm", "text-muted"),
		WithClasses("img", "rounded-lg", "w-full", "mx-auto"),
		WithClasses("figure", "my-6"),
		WithClasses("figcaption", "text-sm", "text-center", "text-muted"),

		// Inline icon subset. Attribute names below follow the HTML
		// parser's foreign-content adjustments (viewBox, not viewbox).
		WithAttrs("svg",
			"xmlns", "viewBox", "width", "height", "fill",
			"stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
			"aria-hidden", "role",
		),
		WithClasses("svg", "icon", "icon-sm", "icon-lg", "inline-block"),
		WithAttrs("g", "fill", "stroke", "stroke-width"),
		WithAttrs("path", "d", "fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin"),
		WithAttrs("circle", "cx", "cy", "r", "fill", "stroke", "stroke-width"),
		WithAttrs("ellipse", "cx", "cy", "rx", "ry", "fill", "stroke", "stroke-width"),
		WithAttrs("rect", "x", "y", "width", "height", "rx", "ry", "fill", "stroke", "stroke-width"),
		WithAttrs("line", "x1", "y1", "x2", "y2", "stroke", "stroke-width", "stroke-linecap"),
		WithAttrs("polyline", "points", "fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin"),
		WithAttrs("polygon", "points", "fill", "stroke", "stroke-width"),
		WithElements("title", "desc", "defs"),
		WithAttrs("use", "href"),
	)
})

// Content returns the shared policy for admin-authored rich content.
func Content() *Policy {
	return contentPolicy()
}
