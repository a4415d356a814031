package job

import (
	"time"

	"github.com/riverqueue/river"
)

// enqueueConfig holds options for a single enqueue call.
type enqueueConfig struct {
	scheduledAt *time.Time
	queue       string
	uniqueKey   string
	tags        []string
	maxAttempts int
	uniqueFor   time.Duration
	priority    int
}

// insertOpts translates the collected options into River's insert options.
// Zero values stay unset so River applies its own defaults.
func (c *enqueueConfig) insertOpts() *river.InsertOpts {
	opts := &river.InsertOpts{}
	if c.queue != "" {
		opts.Queue = c.queue
	}
	if c.scheduledAt != nil {
		opts.ScheduledAt = *c.scheduledAt
	}
	if c.maxAttempts > 0 {
		opts.MaxAttempts = c.maxAttempts
	}
	if c.priority > 0 {
		opts.Priority = c.priority
	}
	if len(c.tags) > 0 {
		opts.Tags = c.tags
	}
	if c.uniqueFor > 0 {
		opts.UniqueOpts = river.UniqueOpts{ByPeriod: c.uniqueFor}
	}
	return opts
}

// EnqueueOption configures job enqueueing.
type EnqueueOption func(*enqueueConfig)

// InQueue routes the job to a named queue instead of the default one.
//
// Example:
//
//	m.Enqueue(ctx, "contact.notify", payload, job.InQueue("email"))
func InQueue(name string) EnqueueOption {
	return func(c *enqueueConfig) {
		if name != "" {
			c.queue = name
		}
	}
}

// ScheduledAt delays the job until a specific time.
func ScheduledAt(t time.Time) EnqueueOption {
	return func(c *enqueueConfig) {
		c.scheduledAt = &t
	}
}

// ScheduledIn delays the job by a duration from now.
//
// Example:
//
//	m.Enqueue(ctx, "reminder.daily", payload, job.ScheduledIn(24*time.Hour))
func ScheduledIn(d time.Duration) EnqueueOption {
	return func(c *enqueueConfig) {
		t := time.Now().Add(d)
		c.scheduledAt = &t
	}
}

// MaxAttempts caps retries for the job. River's default is 25.
func MaxAttempts(n int) EnqueueOption {
	return func(c *enqueueConfig) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// UniqueFor deduplicates jobs over the given period: while one job with
// the same task name (and UniqueKey, if set) is pending, inserts are
// skipped.
//
// Example:
//
//	// At most one reminder per recipient per day.
//	m.Enqueue(ctx, "reminder.daily", payload,
//	    job.UniqueFor(24*time.Hour),
//	    job.UniqueKey(email))
func UniqueFor(d time.Duration) EnqueueOption {
	return func(c *enqueueConfig) {
		c.uniqueFor = d
	}
}

// UniqueKey sets the deduplication key used with UniqueFor. Without it,
// River derives a key from the job arguments.
func UniqueKey(key string) EnqueueOption {
	return func(c *enqueueConfig) {
		c.uniqueKey = key
	}
}

// Priority orders jobs within a queue; lower runs first. Defaults to 1.
func Priority(p int) EnqueueOption {
	return func(c *enqueueConfig) {
		c.priority = p
	}
}

// Tags attaches metadata tags to the job for filtering and monitoring.
func Tags(tags ...string) EnqueueOption {
	return func(c *enqueueConfig) {
		c.tags = append(c.tags, tags...)
	}
}
