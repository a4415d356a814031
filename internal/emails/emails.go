// Package emails bundles the transactional email templates shipped with
// Daybook. Pass FS to mailer.NewRenderer; template names resolve relative
// to this package ("daily-reminder.md", "layouts/base.html").
package emails

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// FS exposes the bundled templates with the templates/ prefix stripped.
var FS = mustSub()

func mustSub() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Template and layout names understood by the bundled renderer.
const (
	TemplateDailyReminder     = "daily-reminder.md"
	TemplateContactSubmission = "contact-submission.md"

	LayoutBase = "base.html"
)
