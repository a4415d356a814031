package cms

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/media"
	"github.com/dmitrymomot/daybook/pkg/sanitizer"
)

const defaultCacheTTL = 5 * time.Minute

// Option configures a Service.
type Option func(*config)

type config struct {
	posts    cache.Cache[Post]
	sections cache.Cache[[]Section]
	cacheTTL time.Duration
	policy   *sanitizer.Policy
	storage  media.Storage
	enqueuer Enqueuer
	logger   *slog.Logger
}

func defaultConfig() *config {
	return &config{
		cacheTTL: defaultCacheTTL,
	}
}

// WithPostCache replaces the per-slug post cache. The caller keeps
// ownership; the service never closes a cache it did not create.
func WithPostCache(c cache.Cache[Post]) Option {
	return func(cfg *config) {
		cfg.posts = c
	}
}

// WithSectionCache replaces the section-list cache. The caller keeps
// ownership.
func WithSectionCache(c cache.Cache[[]Section]) Option {
	return func(cfg *config) {
		cfg.sections = c
	}
}

// WithCacheTTL sets how long cached posts and sections stay fresh.
// Default: 5 minutes.
func WithCacheTTL(d time.Duration) Option {
	return func(cfg *config) {
		cfg.cacheTTL = d
	}
}

// WithPolicy replaces the sanitization policy applied to post and
// section bodies. Default: sanitizer.Content().
func WithPolicy(p *sanitizer.Policy) Option {
	return func(cfg *config) {
		cfg.policy = p
	}
}

// WithStorage wires media storage for post covers.
func WithStorage(st media.Storage) Option {
	return func(cfg *config) {
		cfg.storage = st
	}
}

// WithEnqueuer wires the background-task enqueuer used to notify the
// admin about new contact submissions.
func WithEnqueuer(e Enqueuer) Option {
	return func(cfg *config) {
		cfg.enqueuer = e
	}
}

// WithLogger sets the logger for best-effort failures (cache
// invalidation, task enqueue, cover cleanup). Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}
