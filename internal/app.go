package internal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/daybook/internal/emails"
	"github.com/dmitrymomot/daybook/internal/tasks"
	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/cms"
	"github.com/dmitrymomot/daybook/pkg/config"
	"github.com/dmitrymomot/daybook/pkg/db"
	"github.com/dmitrymomot/daybook/pkg/health"
	"github.com/dmitrymomot/daybook/pkg/job"
	"github.com/dmitrymomot/daybook/pkg/journal"
	"github.com/dmitrymomot/daybook/pkg/logger"
	"github.com/dmitrymomot/daybook/pkg/mailer"
	"github.com/dmitrymomot/daybook/pkg/mailer/resend"
	"github.com/dmitrymomot/daybook/pkg/media"
	"github.com/dmitrymomot/daybook/pkg/notify"
	"github.com/dmitrymomot/daybook/pkg/redis"
)

// Config carries the application-level settings shared across
// components. Everything else (database, redis tuning, mailer, media)
// loads from its own package's env struct.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"daybook"`
	AppURL  string `env:"APP_URL" envDefault:"http://localhost:3000"`

	// AdminEmail enables contact-submission notifications when set.
	AdminEmail string `env:"ADMIN_EMAIL"`

	// AdminURL is the link target in admin notification emails.
	// Defaults to AppURL + "/admin/submissions".
	AdminURL string `env:"ADMIN_URL"`

	// ReminderSchedule is the cron expression for the daily journaling
	// reminder. Set to an empty string to disable reminders.
	ReminderSchedule string `env:"REMINDER_SCHEDULE" envDefault:"0 18 * * *"`

	// RedisURL enables redis-backed caches and toast dedup when set.
	// Without it every cache falls back to in-process memory.
	RedisURL string `env:"REDIS_URL"`

	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// lifecycle is one component's place in the start/stop order. Entries
// without a start func are resources opened during assembly; their
// stop always applies. Entries with a start func are stopped only
// after that start ran.
type lifecycle struct {
	name    string
	start   func(context.Context) error
	stop    func(context.Context) error
	started bool
}

// App is the assembled application: connected infrastructure, the
// domain services wired to it, and the ordered lifecycle tying them to
// Run. It owns no router; the embedding app mounts whatever HTTP
// surface it wants on top of the services and handlers exposed here.
type App struct {
	cfg    Config
	logger *slog.Logger

	pool    *pgxpool.Pool
	rdb     goredis.UniversalClient
	journal *journal.Service
	cms     *cms.Service
	center  *notify.Center
	mail    *mailer.Mailer
	storage media.Storage
	jobs    *job.Manager

	checks          health.Checks
	lifecycles      []lifecycle
	shutdownTimeout time.Duration

	mu       sync.Mutex
	done     chan struct{}
	stopOnce sync.Once
}

// New assembles the application: configuration, logger, database,
// optional redis, the journal and CMS services, the notify center,
// mailer, media storage, and the job manager with the built-in tasks.
//
// Only the database is mandatory. Redis, mailer, and media storage
// each switch on when their configuration is present and stay off
// otherwise, so a bare DATABASE_URL is enough to get a working app.
func New(ctx context.Context, opts ...Option) (*App, error) {
	o := newOptions(opts...)

	cfg, err := resolveConfig(o)
	if err != nil {
		return nil, err
	}

	log := o.logger
	if log == nil {
		log, err = buildLogger()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		cfg:             cfg,
		logger:          log,
		checks:          health.Checks{},
		shutdownTimeout: cfg.ShutdownTimeout,
		done:            make(chan struct{}),
	}
	if o.shutdownTimeout > 0 {
		app.shutdownTimeout = o.shutdownTimeout
	}

	// Tear down whatever was opened when a later step fails, newest
	// first.
	fail := func(err error) (*App, error) {
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for i := len(app.lifecycles) - 1; i >= 0; i-- {
			lc := app.lifecycles[i]
			if lc.started && lc.stop != nil {
				_ = lc.stop(sctx)
			}
		}
		return nil, err
	}

	// Database is the one hard dependency.
	pool := o.pool
	if pool == nil {
		var dbCfg db.Config
		if err := config.Load(&dbCfg); err != nil {
			return nil, fmt.Errorf("database config: %w", err)
		}
		pool, err = db.Connect(ctx, dbCfg)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		app.addResource("database", db.Shutdown(pool))
	}
	app.pool = pool
	app.checks["db"] = db.Healthcheck(pool)

	// Redis switches caches and toast dedup from in-process memory to
	// shared state.
	rdb := o.redis
	if rdb == nil && cfg.RedisURL != "" {
		rdb, err = redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return fail(fmt.Errorf("connect redis: %w", err))
		}
		app.addResource("redis", redis.Shutdown(rdb))
	}
	if rdb != nil {
		app.rdb = rdb
		app.checks["redis"] = redis.Healthcheck(rdb)
	}

	journalSvc, err := buildJournal(pool, rdb, cfg, log)
	if err != nil {
		return fail(fmt.Errorf("journal service: %w", err))
	}
	app.journal = journalSvc
	app.addResource("journal cache", func(context.Context) error { return journalSvc.Close() })

	// Mailer switches on when a sender is injected or resend env is
	// present; without one the app runs but sends nothing.
	mail, err := buildMailer(o, log)
	if err != nil {
		return fail(err)
	}
	app.mail = mail

	storage, err := buildStorage(o, log)
	if err != nil {
		return fail(err)
	}
	app.storage = storage

	contactEnabled := mail != nil && cfg.AdminEmail != ""
	reminderEnabled := mail != nil && cfg.ReminderSchedule != ""

	cmsSvc, err := buildCMS(pool, rdb, storage, cfg, log, contactEnabled)
	if err != nil {
		return fail(fmt.Errorf("cms service: %w", err))
	}
	app.cms = cmsSvc
	app.addResource("cms cache", func(context.Context) error { return cmsSvc.Close() })

	center := notify.NewCenter(buildNotifyOptions(rdb, log, o.deliverers)...)
	app.center = center
	app.addComponent("notify center", center.StartFunc(), center.Shutdown())

	if contactEnabled || reminderEnabled || len(o.jobOptions) > 0 {
		jobOpts := make([]job.Option, 0, len(o.jobOptions)+3)
		if contactEnabled {
			contact := tasks.NewNotifyContact(cmsSvc, mail, tasks.ContactConfig{
				AdminEmail: cfg.AdminEmail,
				AdminURL:   cfg.AdminURL,
				Toasts:     center,
				Logger:     log,
			})
			jobOpts = append(jobOpts, job.WithTask(contact))
		}
		if reminderEnabled {
			reminder := tasks.NewDailyReminder(tasks.NewSubscriptionStore(pool), mail, tasks.ReminderConfig{
				AppURL:   cfg.AppURL,
				Schedule: cfg.ReminderSchedule,
				Logger:   log,
			})
			jobOpts = append(jobOpts, job.WithScheduledTask(reminder))
		}
		jobOpts = append(jobOpts, o.jobOptions...)
		jobOpts = append(jobOpts, job.WithLogger(log))

		manager, err := job.NewManager(pool, jobOpts...)
		if err != nil {
			return fail(fmt.Errorf("job manager: %w", err))
		}
		app.jobs = manager
		app.checks["jobs"] = job.Healthcheck(manager)
		app.addComponent("job manager", manager.StartFunc(), manager.Shutdown())
	}

	for name, fn := range o.checks {
		app.checks[name] = fn
	}
	for _, fn := range o.startup {
		app.addComponent("startup hook", fn, nil)
	}
	for _, fn := range o.shutdown {
		app.addResource("shutdown hook", fn)
	}

	log.Info("application assembled",
		slog.String("app", cfg.AppName),
		slog.Bool("redis", rdb != nil),
		slog.Bool("mailer", mail != nil),
		slog.Bool("media", storage != nil),
		slog.Bool("jobs", app.jobs != nil),
	)

	return app, nil
}

// addResource registers a stop-only lifecycle entry for something
// already open.
func (a *App) addResource(name string, stop func(context.Context) error) {
	a.lifecycles = append(a.lifecycles, lifecycle{name: name, stop: stop, started: true})
}

// addComponent registers a start/stop pair; the stop runs only after a
// successful start.
func (a *App) addComponent(name string, start, stop func(context.Context) error) {
	a.lifecycles = append(a.lifecycles, lifecycle{name: name, start: start, stop: stop})
}

func resolveConfig(o *options) (Config, error) {
	if o.cfg != nil {
		cfg := *o.cfg
		applyConfigDefaults(&cfg)
		return cfg, nil
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("app config: %w", err)
	}
	applyConfigDefaults(&cfg)
	return cfg, nil
}

func applyConfigDefaults(cfg *Config) {
	if cfg.AppName == "" {
		cfg.AppName = "daybook"
	}
	if cfg.AppURL == "" {
		cfg.AppURL = "http://localhost:3000"
	}
	if cfg.AdminURL == "" {
		cfg.AdminURL = strings.TrimRight(cfg.AppURL, "/") + "/admin/submissions"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
}

func buildLogger() (*slog.Logger, error) {
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return nil, fmt.Errorf("logger config: %w", err)
	}
	var sentryCfg logger.SentryConfig
	if err := config.Load(&sentryCfg); err != nil {
		return nil, fmt.Errorf("sentry config: %w", err)
	}
	return logger.NewWithSentry(logCfg, sentryCfg,
		logger.ExtractUserID,
		logger.ExtractJournalID,
		logger.ExtractTask,
	), nil
}

func buildJournal(pool *pgxpool.Pool, rdb goredis.UniversalClient, cfg Config, log *slog.Logger) (*journal.Service, error) {
	opts := []journal.Option{journal.WithLogger(log)}
	if cfg.CacheTTL > 0 {
		opts = append(opts, journal.WithCacheTTL(cfg.CacheTTL))
	}
	if rdb != nil {
		opts = append(opts, journal.WithCache(
			cache.NewRedis[[]journal.Journal](rdb, nil, redisCacheOptions("journals", cfg.CacheTTL)...),
		))
	}
	return journal.NewService(pool, opts...)
}

func buildCMS(pool *pgxpool.Pool, rdb goredis.UniversalClient, storage media.Storage, cfg Config, log *slog.Logger, withEnqueuer bool) (*cms.Service, error) {
	opts := []cms.Option{cms.WithLogger(log)}
	if cfg.CacheTTL > 0 {
		opts = append(opts, cms.WithCacheTTL(cfg.CacheTTL))
	}
	if rdb != nil {
		opts = append(opts,
			cms.WithPostCache(cache.NewRedis[cms.Post](rdb, nil, redisCacheOptions("posts", cfg.CacheTTL)...)),
			cms.WithSectionCache(cache.NewRedis[[]cms.Section](rdb, nil, redisCacheOptions("sections", cfg.CacheTTL)...)),
		)
	}
	if storage != nil {
		opts = append(opts, cms.WithStorage(storage))
	}
	if withEnqueuer {
		enq, err := job.NewEnqueuer(pool, job.WithEnqueuerLogger(log))
		if err != nil {
			return nil, err
		}
		opts = append(opts, cms.WithEnqueuer(enq))
	}
	return cms.NewService(pool, opts...)
}

func redisCacheOptions(prefix string, ttl time.Duration) []cache.RedisOption {
	opts := []cache.RedisOption{cache.WithPrefix(prefix)}
	if ttl > 0 {
		opts = append(opts, cache.WithRedisDefaultTTL(ttl))
	}
	return opts
}

func buildNotifyOptions(rdb goredis.UniversalClient, log *slog.Logger, deliverers []notify.Deliverer) []notify.Option {
	opts := []notify.Option{notify.WithLogger(log)}
	if rdb != nil {
		opts = append(opts, notify.WithCache(cache.NewRedis[string](rdb, nil, cache.WithPrefix("toasts"))))
	}
	for _, d := range deliverers {
		opts = append(opts, notify.WithDeliverer(d))
	}
	return opts
}

func buildMailer(o *options, log *slog.Logger) (*mailer.Mailer, error) {
	sender := o.sender
	if sender == nil {
		var senderCfg resend.Config
		if err := config.Load(&senderCfg); err != nil {
			log.Info("mailer disabled: resend is not configured")
			return nil, nil
		}
		sender = resend.New(senderCfg)
	}

	var mailCfg mailer.Config
	if err := config.Load(&mailCfg); err != nil {
		return nil, fmt.Errorf("mailer config: %w", err)
	}
	return mailer.New(sender, mailer.NewRenderer(emails.FS), mailCfg), nil
}

func buildStorage(o *options, log *slog.Logger) (media.Storage, error) {
	if o.storage != nil {
		return o.storage, nil
	}

	var mediaCfg media.Config
	if err := config.Load(&mediaCfg); err != nil {
		log.Info("media storage disabled: object storage is not configured")
		return nil, nil
	}
	s3, err := media.New(mediaCfg)
	if err != nil {
		return nil, fmt.Errorf("media storage: %w", err)
	}
	return s3, nil
}

// Accessors. Optional components return nil when disabled.

// Config returns the resolved application configuration.
func (a *App) Config() Config { return a.cfg }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// DB returns the shared connection pool.
func (a *App) DB() *pgxpool.Pool { return a.pool }

// Redis returns the redis client, or nil when redis is disabled.
func (a *App) Redis() goredis.UniversalClient { return a.rdb }

// Journal returns the journal service.
func (a *App) Journal() *journal.Service { return a.journal }

// CMS returns the content service.
func (a *App) CMS() *cms.Service { return a.cms }

// Notify returns the notification center.
func (a *App) Notify() *notify.Center { return a.center }

// Mailer returns the mailer, or nil when no sender is configured.
func (a *App) Mailer() *mailer.Mailer { return a.mail }

// Media returns the object storage, or nil when it is not configured.
func (a *App) Media() media.Storage { return a.storage }

// Jobs returns the job manager, or nil when no tasks are registered.
func (a *App) Jobs() *job.Manager { return a.jobs }
