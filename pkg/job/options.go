package job

import (
	"context"
	"log/slog"
)

// config holds job manager configuration.
type config struct {
	registry   *taskRegistry
	queues     map[string]int
	logger     *slog.Logger
	schedules  []scheduleConfig
	maxWorkers int
}

func newConfig() *config {
	return &config{
		registry: newTaskRegistry(),
		queues:   make(map[string]int),
	}
}

// Option configures the job manager.
type Option func(*config)

// WithTask registers a task handler. The task needs Name() and
// Handle(ctx, P) methods; the payload type P is inferred from Handle.
//
// Example:
//
//	type NotifyContact struct {
//	    cms    *cms.Service
//	    mailer *mailer.Mailer
//	}
//
//	func (t *NotifyContact) Name() string { return cms.TaskContactNotify }
//	func (t *NotifyContact) Handle(ctx context.Context, p cms.ContactNotifyArgs) error {
//	    sub, err := t.cms.GetSubmission(ctx, p.SubmissionID)
//	    ...
//	}
//
//	job.WithTask(tasks.NewNotifyContact(cmsService, mailer))
func WithTask[P any, T interface {
	Name() string
	Handle(context.Context, P) error
}](task T) Option {
	return func(c *config) {
		wrapper := newTaskWrapper[P, T](task)
		c.registry.register(task.Name(), wrapper)
	}
}

// WithScheduledTask registers a periodic task. The task needs Name(),
// Schedule(), and Handle(ctx) methods; Schedule() returns a 5-field cron
// expression (minute hour day month weekday).
//
// Example:
//
//	type DailyReminder struct {
//	    pool *pgxpool.Pool
//	}
//
//	func (t *DailyReminder) Name() string     { return "reminder.daily" }
//	func (t *DailyReminder) Schedule() string { return "0 18 * * *" }
//	func (t *DailyReminder) Handle(ctx context.Context) error {
//	    ...
//	}
//
//	job.WithScheduledTask(tasks.NewDailyReminder(pool))
func WithScheduledTask[T interface {
	Name() string
	Schedule() string
	Handle(context.Context) error
}](task T) Option {
	return func(c *config) {
		c.schedules = append(c.schedules, scheduleConfig{
			name:     task.Name(),
			schedule: task.Schedule(),
			handler:  task.Handle,
		})
	}
}

// WithQueue configures a named queue with its own worker count.
// Tasks land in the default queue unless enqueued with InQueue.
//
// Example:
//
//	job.WithQueue("email", 10)
func WithQueue(name string, workers int) Option {
	return func(c *config) {
		if workers > 0 {
			c.queues[name] = workers
		}
	}
}

// WithLogger sets the logger for job processing. Defaults to a discard
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxWorkers sets the worker count for the default queue.
// Defaults to 100.
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxWorkers = n
		}
	}
}
