package notify

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/daybook/pkg/cache"
)

const defaultDedupWindow = 5 * time.Second

// Option configures a Center.
type Option func(*config)

type config struct {
	deliverers  []Deliverer
	dedupWindow time.Duration
	logger      *slog.Logger
	cache       cache.Cache[string]
}

func defaultConfig() *config {
	return &config{
		dedupWindow: defaultDedupWindow,
	}
}

// WithDeliverer registers a delivery channel. May be given multiple
// times; toasts are offered to every registered deliverer in order.
func WithDeliverer(d Deliverer) Option {
	return func(c *config) {
		if d != nil {
			c.deliverers = append(c.deliverers, d)
		}
	}
}

// WithDedupWindow sets how long a non-empty toast key suppresses
// duplicates. Zero or negative disables deduplication.
// Default: 5 seconds.
func WithDedupWindow(d time.Duration) Option {
	return func(c *config) {
		c.dedupWindow = d
	}
}

// WithLogger sets the logger for delivery failures and suppressed
// duplicates. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCache replaces the dedup cache. Pass a Redis-backed cache to
// share the dedup window across instances. The caller keeps ownership;
// the center never closes a cache it did not create.
func WithCache(c cache.Cache[string]) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}
