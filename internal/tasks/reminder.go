package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/daybook/internal/emails"
	"github.com/dmitrymomot/daybook/pkg/mailer"
)

// TaskReminderDaily is the name the daily reminder registers under.
const TaskReminderDaily = "reminder.daily"

// DefaultReminderSchedule fires at 18:00 server time, late enough that
// the day has happened but early enough to catch people before bed.
const DefaultReminderSchedule = "0 18 * * *"

// Subscription is one opted-in reminder recipient.
type Subscription struct {
	Email string
	Name  string
}

// SubscriptionSource lists reminder recipients. *SubscriptionStore
// satisfies it.
type SubscriptionSource interface {
	ActiveSubscriptions(ctx context.Context) ([]Subscription, error)
}

// ReminderConfig configures the daily reminder task.
type ReminderConfig struct {
	AppURL   string       // base URL the email links back to
	Schedule string       // cron expression; DefaultReminderSchedule when empty
	Logger   *slog.Logger // optional
}

// DailyReminder mails every subscribed user a nudge to write today's
// entry.
type DailyReminder struct {
	source   SubscriptionSource
	mailer   Mailer
	appURL   string
	schedule string
	logger   *slog.Logger
}

// NewDailyReminder builds the scheduled task.
func NewDailyReminder(source SubscriptionSource, m Mailer, cfg ReminderConfig) *DailyReminder {
	schedule := cfg.Schedule
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &DailyReminder{
		source:   source,
		mailer:   m,
		appURL:   cfg.AppURL,
		schedule: schedule,
		logger:   logger,
	}
}

// Name reports the task name.
func (t *DailyReminder) Name() string { return TaskReminderDaily }

// Schedule reports the cron expression the task runs on.
func (t *DailyReminder) Schedule() string { return t.schedule }

// Handle mails each active subscriber. Individual send failures are
// logged and skipped so one bad address cannot starve the rest of the
// list; they do not fail the job, because a retry would double-send to
// everyone who already got theirs. Only a failed subscription query is
// returned, since at that point nothing has gone out yet.
func (t *DailyReminder) Handle(ctx context.Context) error {
	subs, err := t.source.ActiveSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("list reminder subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil
	}

	sent := 0
	for _, sub := range subs {
		// Bail out on shutdown instead of logging a failure per
		// remaining recipient.
		if err := ctx.Err(); err != nil {
			return err
		}

		name := sub.Name
		if name == "" {
			name = "there"
		}

		err := t.mailer.Send(ctx, mailer.SendParams{
			To:       sub.Email,
			Template: emails.TemplateDailyReminder,
			Data: map[string]string{
				"Name":   name,
				"AppURL": t.appURL,
			},
		})
		if err != nil {
			t.logger.ErrorContext(ctx, "daily reminder send failed",
				slog.String("email", sub.Email),
				slog.Any("error", err),
			)
			continue
		}
		sent++
	}

	t.logger.InfoContext(ctx, "daily reminders sent",
		slog.Int("sent", sent),
		slog.Int("subscribed", len(subs)),
	)
	return nil
}
