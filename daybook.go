package daybook

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/daybook/internal"
	"github.com/dmitrymomot/daybook/pkg/health"
	"github.com/dmitrymomot/daybook/pkg/job"
	"github.com/dmitrymomot/daybook/pkg/mailer"
	"github.com/dmitrymomot/daybook/pkg/media"
	"github.com/dmitrymomot/daybook/pkg/notify"
)

// Type aliases - public API
type (
	// App is the assembled application: connected infrastructure, the
	// domain services wired to it, and the lifecycle tying them to Run.
	App = internal.App

	// Config carries the application-level settings.
	Config = internal.Config

	// Option configures the application during assembly.
	Option = internal.Option

	// CheckFunc is the readiness check signature.
	CheckFunc = health.CheckFunc

	// JobOption configures the job manager.
	JobOption = job.Option

	// EnqueueOption configures job enqueueing.
	EnqueueOption = job.EnqueueOption

	// Toast is a user-facing notification.
	Toast = notify.Toast

	// Deliverer pushes toasts to a transport.
	Deliverer = notify.Deliverer

	// DelivererFunc adapts a function into a Deliverer.
	DelivererFunc = notify.DelivererFunc

	// Sender delivers rendered emails.
	Sender = mailer.Sender

	// SendParams describes one outgoing email.
	SendParams = mailer.SendParams

	// MediaStorage stores uploaded files.
	MediaStorage = media.Storage
)

// New assembles the application from the environment and the given
// options. Only DATABASE_URL is required; redis, the mailer, and
// media storage switch on when configured.
//
// Example:
//
//	app, err := daybook.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /health/live", app.LivenessHandler())
//	mux.Handle("GET /health/ready", app.ReadinessHandler())
//
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
func New(ctx context.Context, opts ...Option) (*App, error) {
	return internal.New(ctx, opts...)
}

// App options

// WithConfig supplies the configuration directly instead of loading
// it from the environment.
func WithConfig(cfg Config) Option {
	return internal.WithConfig(cfg)
}

// WithLogger sets a fully custom logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithPool supplies an already-connected database pool. The caller
// keeps ownership and closes it.
func WithPool(pool *pgxpool.Pool) Option {
	return internal.WithPool(pool)
}

// WithRedis supplies an already-connected redis client. The caller
// keeps ownership and closes it.
func WithRedis(client goredis.UniversalClient) Option {
	return internal.WithRedis(client)
}

// WithSender sets the mail sender, replacing the Resend client built
// from the environment.
func WithSender(s Sender) Option {
	return internal.WithSender(s)
}

// WithMediaStorage supplies the object storage, replacing the S3
// client built from the environment.
func WithMediaStorage(s MediaStorage) Option {
	return internal.WithMediaStorage(s)
}

// WithDeliverer registers an extra toast deliverer on the notify
// center.
func WithDeliverer(d Deliverer) Option {
	return internal.WithDeliverer(d)
}

// WithJobOptions passes extra options to the job manager: custom
// tasks, scheduled tasks, or queue tuning.
//
// Example:
//
//	daybook.New(ctx,
//	    daybook.WithJobOptions(
//	        job.WithTask(exportTask),
//	        job.WithQueue("exports", 2),
//	    ),
//	)
func WithJobOptions(opts ...JobOption) Option {
	return internal.WithJobOptions(opts...)
}

// WithHealthCheck adds a readiness check alongside the built-in db,
// redis, and job checks.
func WithHealthCheck(name string, fn CheckFunc) Option {
	return internal.WithHealthCheck(name, fn)
}

// WithStartupHook runs fn during Run after the built-in components
// have started.
func WithStartupHook(fn func(context.Context) error) Option {
	return internal.WithStartupHook(fn)
}

// WithShutdownHook runs fn first during shutdown, before the built-in
// components stop.
func WithShutdownHook(fn func(context.Context) error) Option {
	return internal.WithShutdownHook(fn)
}

// WithShutdownTimeout bounds how long shutdown may take overall.
func WithShutdownTimeout(d time.Duration) Option {
	return internal.WithShutdownTimeout(d)
}
