package journal

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/sanitizer"
)

const defaultCacheTTL = 5 * time.Minute

// Option configures a Service.
type Option func(*config)

type config struct {
	cache    cache.Cache[[]Journal]
	cacheTTL time.Duration
	policy   *sanitizer.Policy
	logger   *slog.Logger
}

func defaultConfig() *config {
	return &config{
		cacheTTL: defaultCacheTTL,
	}
}

// WithCache replaces the journal-list cache. Pass a Redis-backed cache
// to share it across instances. The caller keeps ownership; the service
// never closes a cache it did not create.
func WithCache(c cache.Cache[[]Journal]) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// WithCacheTTL sets how long cached journal lists stay fresh.
// Default: 5 minutes.
func WithCacheTTL(d time.Duration) Option {
	return func(cfg *config) {
		cfg.cacheTTL = d
	}
}

// WithPolicy replaces the sanitization policy applied to entry bodies.
// Default: sanitizer.Content().
func WithPolicy(p *sanitizer.Policy) Option {
	return func(cfg *config) {
		cfg.policy = p
	}
}

// WithLogger sets the logger for cache invalidation failures.
// Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}
