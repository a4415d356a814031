package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// Renderer turns markdown message templates into layout-wrapped HTML.
// Parsed templates and layouts are memoized per name; rendered output
// never is, so one template serves concurrent sends with different data.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	templates *parseCache[*messageTemplate]
	layouts   *parseCache[*template.Template]

	templateDir string
	layoutDir   string
}

// messageTemplate is a parsed template body plus its frontmatter.
type messageTemplate struct {
	metadata map[string]any
	tmpl     *texttemplate.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // default: "."
	LayoutDir   string // default: "layouts"
}

// NewRenderer creates a renderer with default directories.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directories.
func NewRendererWithConfig(filesystem fs.FS, opts RendererConfig) *Renderer {
	if opts.TemplateDir == "" {
		opts.TemplateDir = "."
	}
	if opts.LayoutDir == "" {
		opts.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:          filesystem,
		templateDir: opts.TemplateDir,
		layoutDir:   opts.LayoutDir,
		md: goldmark.New(
			goldmark.WithExtensions(NewButtonExtension()),
		),
		templates: newParseCache[*messageTemplate](),
		layouts:   newParseCache[*template.Template](),
	}
}

// RenderResult contains the rendered HTML, plain text, and extracted metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string // Processed markdown before HTML conversion.
}

// Render executes templateName with data, converts the result to HTML,
// and wraps it in the named layout. The layout sees the body as
// .Content and the template's frontmatter as .Metadata.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	msg, err := r.getTemplate(templateName)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := msg.tmpl.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, templateName, err)
	}

	// The text alternative is the executed markdown itself.
	plainText := markdown.String()

	var body bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("%w: convert %s: %v", ErrRenderFailed, templateName, err)
	}

	layoutTmpl, err := r.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	err = layoutTmpl.Execute(&html, map[string]any{
		"Content":  template.HTML(body.String()),
		"Metadata": msg.metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		HTML:     html.String(),
		Text:     plainText,
		Metadata: msg.metadata,
	}, nil
}

func (r *Renderer) getTemplate(name string) (*messageTemplate, error) {
	return r.templates.get(name, func() (*messageTemplate, error) {
		content, err := fs.ReadFile(r.fs, filepath.Join(r.templateDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
		}

		parsed, err := ParseTemplate(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
		}

		tmpl, err := texttemplate.New(name).Parse(parsed.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
		}

		return &messageTemplate{metadata: parsed.Metadata, tmpl: tmpl}, nil
	})
}

func (r *Renderer) getLayout(name string) (*template.Template, error) {
	return r.layouts.get(name, func() (*template.Template, error) {
		content, err := fs.ReadFile(r.fs, filepath.Join(r.layoutDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
		}

		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
		}

		return tmpl, nil
	})
}

// parseCache memoizes parse results by name.
type parseCache[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

func newParseCache[T any]() *parseCache[T] {
	return &parseCache[T]{entries: make(map[string]T)}
}

// get returns the entry for name, calling parse on a miss. The re-check
// under the write lock keeps concurrent misses from parsing twice.
// Errors are not cached; the next call retries.
func (c *parseCache[T]) get(name string, parse func() (T, error)) (T, error) {
	c.mu.RLock()
	v, ok := c.entries[name]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[name]; ok {
		return v, nil
	}

	v, err := parse()
	if err != nil {
		var zero T
		return zero, err
	}

	c.entries[name] = v
	return v, nil
}
