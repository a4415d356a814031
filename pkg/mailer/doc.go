// Package mailer renders markdown email templates and hands the result
// to a pluggable delivery provider.
//
// The package separates sending (via providers) from template
// rendering, so the provider can change without touching the template
// system.
//
// # Architecture
//
//   - Sender: interface that email providers implement
//   - Renderer: converts markdown templates with YAML frontmatter to HTML
//   - Mailer: high-level client combining the two
//
// # Usage
//
// With the built-in Resend provider and the app's embedded templates:
//
//	sender := resend.New(resend.Config{
//	    APIKey:      os.Getenv("RESEND_API_KEY"),
//	    SenderEmail: "hello@daybook.example",
//	    SenderName:  "Daybook",
//	})
//
//	renderer := mailer.NewRenderer(emails.FS)
//
//	m := mailer.New(sender, renderer, mailer.Config{
//	    FallbackSubject: "Daybook notification",
//	    DefaultLayout:   "base.html",
//	})
//
//	err := m.Send(ctx, mailer.SendParams{
//	    To:       "owner@example.com",
//	    Template: "daily-reminder.md",
//	    Data:     map[string]any{"Name": "Dana", "AppURL": appURL},
//	})
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter. Subject
// fields support Go template syntax for dynamic values:
//
//	---
//	Subject: "Time to write, {{.Name}}"
//	---
//
//	# Your journal is waiting
//
//	A few minutes of writing keeps the streak alive.
//
//	[!button|Open Daybook]({{.AppURL}})
//
// The [!button|Label](URL) syntax renders as a styled CTA link; see
// ButtonExtension.
//
// # Sending
//
//   - Send renders a template and delivers the result. Subject
//     resolution: SendParams.Subject, then template metadata, then the
//     configured fallback.
//   - SendRaw delivers a pre-built Email without rendering.
//
// SendParams carries optional overrides for subject, layout, sender,
// reply-to, CC, BCC, and attachments.
//
// # Tags
//
// Emails accept provider-specific tags for categorization:
//
//	email.Tags = mailer.SimpleTags("contact", "admin")
//
// # Custom providers
//
// Implement Sender to deliver through another provider:
//
//	type logSender struct{ log *slog.Logger }
//
//	func (s *logSender) Send(ctx context.Context, email *mailer.Email) error {
//	    s.log.InfoContext(ctx, "email", slog.String("to", email.To[0]))
//	    return nil
//	}
package mailer
