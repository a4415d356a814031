package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ButtonNode represents a CTA button link in the AST.
type ButtonNode struct {
	ast.BaseInline
	URL   []byte
	Label []byte
}

func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// KindButton identifies ButtonNode in the AST.
var KindButton = ast.NewNodeKind("Button")

// buttonPrefix distinguishes button links from regular markdown links.
const buttonPrefix = "[!button|"

func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

// buttonParser parses button syntax: [!button|Label](URL).
type buttonParser struct{}

// NewButtonParser returns the inline parser for button syntax.
func NewButtonParser() parser.InlineParser {
	return &buttonParser{}
}

func (s *buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (s *buttonParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, []byte(buttonPrefix)) {
		return nil
	}

	rest := line[len(buttonPrefix):]
	labelEnd := bytes.IndexByte(rest, ']')
	if labelEnd == -1 {
		return nil
	}
	label := rest[:labelEnd]

	rest = rest[labelEnd+1:]
	if len(rest) == 0 || rest[0] != '(' {
		return nil
	}

	urlEnd := bytes.IndexByte(rest, ')')
	if urlEnd == -1 {
		return nil
	}
	url := rest[1:urlEnd]

	block.Advance(len(buttonPrefix) + labelEnd + 1 + urlEnd + 1)

	return &ButtonNode{
		URL:   url,
		Label: label,
	}
}

// buttonRenderer writes ButtonNode as an anchor carrying the btn class.
type buttonRenderer struct {
	html.Config
}

// NewButtonRenderer returns a node renderer for KindButton.
func NewButtonRenderer(opts ...html.Option) renderer.NodeRenderer {
	r := &buttonRenderer{
		Config: html.NewConfig(),
	}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.renderButton)
}

func (r *buttonRenderer) renderButton(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ButtonNode)

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(n.URL))
	_, _ = w.WriteString(`" class="btn">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

// ButtonExtension adds [!button|Label](URL) syntax, rendered as a
// styled anchor the email layout can target with the btn class.
type ButtonExtension struct{}

func (e *ButtonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewButtonParser(), 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewButtonRenderer(), 50),
	))
}

// NewButtonExtension returns the extension the renderer registers on its
// goldmark instance.
func NewButtonExtension() goldmark.Extender {
	return &ButtonExtension{}
}
