package internal

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/daybook/pkg/health"
	"github.com/dmitrymomot/daybook/pkg/job"
	"github.com/dmitrymomot/daybook/pkg/mailer"
	"github.com/dmitrymomot/daybook/pkg/media"
	"github.com/dmitrymomot/daybook/pkg/notify"
)

// Option configures the application during assembly.
type Option func(*options)

type options struct {
	cfg        *Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	redis      goredis.UniversalClient
	sender     mailer.Sender
	storage    media.Storage
	deliverers []notify.Deliverer
	jobOptions []job.Option
	checks     map[string]health.CheckFunc
	startup    []func(context.Context) error
	shutdown   []func(context.Context) error

	shutdownTimeout time.Duration
}

func newOptions(opts ...Option) *options {
	o := &options{checks: map[string]health.CheckFunc{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithConfig supplies the application configuration directly instead
// of loading it from the environment. AppName, AppURL, AdminURL, and
// ShutdownTimeout receive their defaults when zero; an empty
// ReminderSchedule leaves reminders off.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = &cfg
	}
}

// WithLogger sets a fully custom logger. Without it the app builds one
// from LOG_LEVEL, LOG_FORMAT, and the optional SENTRY_DSN.
//
// Example:
//
//	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	daybook.New(ctx, daybook.WithLogger(log))
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPool supplies an already-connected database pool. The app does
// not close injected pools; the caller keeps ownership.
func WithPool(pool *pgxpool.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithRedis supplies an already-connected redis client and switches
// caches and toast dedup to it. Injected clients stay open after the
// app shuts down.
func WithRedis(client goredis.UniversalClient) Option {
	return func(o *options) {
		o.redis = client
	}
}

// WithSender sets the mail sender, replacing the Resend client built
// from RESEND_API_KEY. Useful for a local SMTP relay or a capture
// sender in tests.
func WithSender(s mailer.Sender) Option {
	return func(o *options) {
		o.sender = s
	}
}

// WithMediaStorage supplies the object storage, replacing the S3
// client built from MEDIA_S3_* variables.
func WithMediaStorage(s media.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithDeliverer registers an extra toast deliverer on the notify
// center, typically an SSE or websocket push bridge.
//
// Example:
//
//	daybook.New(ctx, daybook.WithDeliverer(sseBridge))
func WithDeliverer(d notify.Deliverer) Option {
	return func(o *options) {
		if d != nil {
			o.deliverers = append(o.deliverers, d)
		}
	}
}

// WithJobOptions passes extra options to the job manager: custom
// tasks, scheduled tasks, or queue tuning. Supplying any job option
// forces the manager on even when the built-in tasks are disabled.
//
// Example:
//
//	daybook.New(ctx,
//	    daybook.WithJobOptions(
//	        job.WithTask(exportTask),
//	        job.WithQueue("exports", 2),
//	    ),
//	)
func WithJobOptions(opts ...job.Option) Option {
	return func(o *options) {
		o.jobOptions = append(o.jobOptions, opts...)
	}
}

// WithHealthCheck adds a readiness check alongside the built-in db,
// redis, and job checks. Registering a built-in name replaces that
// check.
func WithHealthCheck(name string, fn health.CheckFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.checks[name] = fn
		}
	}
}

// WithStartupHook runs fn during Run after the built-in components
// have started, in registration order. A failed hook aborts startup
// and unwinds everything already running.
func WithStartupHook(fn func(context.Context) error) Option {
	return func(o *options) {
		if fn != nil {
			o.startup = append(o.startup, fn)
		}
	}
}

// WithShutdownHook runs fn first during shutdown, before the built-in
// components stop. Hooks registered later run earlier.
func WithShutdownHook(fn func(context.Context) error) Option {
	return func(o *options) {
		if fn != nil {
			o.shutdown = append(o.shutdown, fn)
		}
	}
}

// WithShutdownTimeout bounds how long shutdown may take overall,
// overriding SHUTDOWN_TIMEOUT.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}
