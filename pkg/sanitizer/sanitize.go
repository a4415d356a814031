package sanitizer

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tags whose content must die with them. Everything else that is not
// allowed is unwrapped: the element goes, its filtered children stay.
var dropWithContent = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
	"noscript": true,
}

// Attributes checked against the allowed URL schemes.
var urlAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// Elements that may appear inside a surviving svg subtree. HTML elements
// reaching into foreign content (through an unwrapped foreignObject, for
// example) are dropped whole: serialized inside <svg> they would
// re-parent on the next parse, and output must be stable.
var svgContent = map[string]bool{
	"svg":      true,
	"g":        true,
	"path":     true,
	"circle":   true,
	"ellipse":  true,
	"rect":     true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
	"title":    true,
	"desc":     true,
	"defs":     true,
	"use":      true,
	"clipPath": true,
}

// Sanitize parses input permissively as a body fragment, walks the node
// tree against the policy, and renders the surviving subset. It never
// fails on malformed input: anything that cannot be safely interpreted
// is discarded, worst case yielding "". The function is pure and
// reentrant; output is stable under re-sanitation.
func (p *Policy) Sanitize(input string) string {
	if input == "" {
		return ""
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(input), ctx)
	if err != nil {
		// Fragment parsing of a string does not fail in practice, but
		// this boundary fails closed, not open.
		return ""
	}

	var b strings.Builder
	for _, n := range nodes {
		for _, kept := range p.filter(n, false) {
			if err := html.Render(&b, kept); err != nil {
				return ""
			}
		}
	}
	return b.String()
}

// filter rebuilds the subtree rooted at n as a fresh list of allowed
// nodes. A disallowed element contributes its filtered children in its
// place; comments, doctypes, and the drop-with-content tags contribute
// nothing. foreign is true inside an svg subtree.
func (p *Policy) filter(n *html.Node, foreign bool) []*html.Node {
	switch n.Type {
	case html.TextNode:
		return []*html.Node{{Type: html.TextNode, Data: n.Data}}

	case html.ElementNode:
		if dropWithContent[n.Data] {
			return nil
		}
		if foreign && !svgContent[n.Data] {
			return nil
		}

		var kids []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			kids = append(kids, p.filter(c, foreign || n.Data == "svg")...)
		}

		allowedAttrs, ok := p.tags[n.Data]
		if !ok {
			return kids
		}

		clone := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Data,
			DataAtom: n.DataAtom,
			Attr:     p.filterAttrs(n.Data, n.Attr, allowedAttrs),
		}
		if clone.Data == "a" {
			clone.Attr = ensureNoopener(clone.Attr)
		}
		for _, k := range kids {
			clone.AppendChild(k)
		}
		return []*html.Node{clone}

	default:
		return nil
	}
}

func (p *Policy) filterAttrs(tag string, attrs []html.Attribute, allowed map[string]bool) []html.Attribute {
	var out []html.Attribute
	for _, a := range attrs {
		if a.Namespace != "" || !allowed[a.Key] {
			continue
		}
		switch {
		case a.Key == "class":
			val := p.filterClassTokens(tag, a.Val)
			if val == "" {
				continue
			}
			a.Val = val
		case urlAttrs[a.Key]:
			if !p.allowURL(a.Val) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// filterClassTokens keeps only the space-separated tokens present in the
// tag's allowed class set, preserving their order.
func (p *Policy) filterClassTokens(tag, val string) string {
	allowed := p.classes[tag]
	if len(allowed) == 0 {
		return ""
	}
	var kept []string
	for _, tok := range strings.Fields(val) {
		if allowed[tok] {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

// allowURL accepts relative URLs and bare fragments, and absolute URLs
// whose scheme is in the allowed set. Unparseable values are rejected;
// this includes the embedded-control-character obfuscations browsers
// would otherwise honor.
func (p *Policy) allowURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return true
	}
	return p.schemes[u.Scheme]
}

// ensureNoopener rewrites an anchor's rel attribute: when the anchor
// targets _blank, the noopener token must be present exactly once, with
// every other existing token preserved.
func ensureNoopener(attrs []html.Attribute) []html.Attribute {
	target, relIdx := "", -1
	for i, a := range attrs {
		switch a.Key {
		case "target":
			target = a.Val
		case "rel":
			relIdx = i
		}
	}
	if target != "_blank" {
		return attrs
	}
	if relIdx < 0 {
		return append(attrs, html.Attribute{Key: "rel", Val: "noopener"})
	}
	for _, tok := range strings.Fields(attrs[relIdx].Val) {
		if tok == "noopener" {
			return attrs
		}
	}
	attrs[relIdx].Val = strings.TrimSpace(attrs[relIdx].Val + " noopener")
	return attrs
}
