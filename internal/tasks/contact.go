package tasks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/daybook/internal/emails"
	"github.com/dmitrymomot/daybook/pkg/cms"
	"github.com/dmitrymomot/daybook/pkg/mailer"
	"github.com/dmitrymomot/daybook/pkg/notify"
)

// SubmissionStore loads contact submissions. *cms.Service satisfies it.
type SubmissionStore interface {
	GetSubmission(ctx context.Context, id uuid.UUID) (cms.Submission, error)
}

// Mailer sends a templated email. *mailer.Mailer satisfies it.
type Mailer interface {
	Send(ctx context.Context, params mailer.SendParams) error
}

// ToastPusher raises toasts in the admin UI. *notify.Center satisfies it.
type ToastPusher interface {
	Push(ctx context.Context, toast notify.Toast) error
}

// ContactConfig configures the contact notification task.
type ContactConfig struct {
	AdminEmail string       // recipient of submission notifications
	AdminURL   string       // link target for the "open submissions" button
	Toasts     ToastPusher  // optional; nil disables admin toasts
	Logger     *slog.Logger // optional
}

// NotifyContact handles the "contact.notify" task: it mails the admin
// about a new contact submission and raises a toast in the admin UI.
type NotifyContact struct {
	store  SubmissionStore
	mailer Mailer
	toasts ToastPusher
	admin  string
	link   string
	logger *slog.Logger
}

// NewNotifyContact builds the handler. The store is normally the cms
// service and the mailer the shared app mailer.
func NewNotifyContact(store SubmissionStore, m Mailer, cfg ContactConfig) *NotifyContact {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &NotifyContact{
		store:  store,
		mailer: m,
		toasts: cfg.Toasts,
		admin:  cfg.AdminEmail,
		link:   cfg.AdminURL,
		logger: logger,
	}
}

// Name reports the task name cms enqueues submissions under.
func (t *NotifyContact) Name() string { return cms.TaskContactNotify }

// Handle loads the submission and notifies the admin. A submission that
// no longer exists is dropped without error: retrying cannot bring it
// back.
func (t *NotifyContact) Handle(ctx context.Context, args cms.ContactNotifyArgs) error {
	sub, err := t.store.GetSubmission(ctx, args.SubmissionID)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			t.logger.WarnContext(ctx, "contact submission deleted before notify ran",
				slog.String("submission_id", args.SubmissionID.String()),
			)
			return nil
		}
		return fmt.Errorf("load submission %s: %w", args.SubmissionID, err)
	}

	err = t.mailer.Send(ctx, mailer.SendParams{
		To:       t.admin,
		Template: emails.TemplateContactSubmission,
		Data: map[string]string{
			"Name":     sub.Name,
			"Email":    sub.Email,
			"Ref":      sub.Ref,
			"Message":  sub.Message,
			"AdminURL": t.link,
		},
	})
	if err != nil {
		return fmt.Errorf("mail admin about %s: %w", sub.Ref, err)
	}

	if t.toasts != nil {
		toast := notify.Info("New contact message", fmt.Sprintf("%s wrote in (%s)", sub.Name, sub.Ref)).
			WithKey("contact:" + sub.Ref)
		if err := t.toasts.Push(ctx, toast); err != nil {
			// The email is already out; a lost toast is not worth a retry.
			t.logger.WarnContext(ctx, "admin toast failed",
				slog.String("ref", sub.Ref),
				slog.Any("error", err),
			)
		}
	}

	return nil
}
