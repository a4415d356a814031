package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Mailer renders templates and delivers the result through a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a new Mailer with the given sender and renderer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string // single recipient
	Template string // template filename, e.g. "daily-reminder.md"
	Data     any    // template data

	// Optional overrides
	Subject     string       // override template subject
	Layout      string       // override default layout
	From        string       // override default sender
	ReplyTo     string       // reply-to address
	CC          []string     // carbon copy
	BCC         []string     // blind carbon copy
	Attachments []Attachment // file attachments
}

// Send renders a template and sends an email.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject, err := m.resolveSubject(params, result.Metadata)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	email := &Email{
		To:          []string{params.To},
		Subject:     subject,
		HTML:        result.HTML,
		Text:        result.Text,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Attachments: params.Attachments,
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// SendRaw sends a pre-built email without template rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" {
		return ErrNoContent
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// resolveSubject picks the subject line and runs it through text/template,
// so subjects can reference the same data as the body, e.g.
// "Your week, {{.Name}}".
func (m *Mailer) resolveSubject(params SendParams, metadata map[string]any) (string, error) {
	subject := params.Subject
	if subject == "" {
		if s, ok := metadata["Subject"].(string); ok {
			subject = s
		} else {
			subject = m.config.FallbackSubject
		}
	}

	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params.Data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
