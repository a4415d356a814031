package notify

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/id"
)

// Center fans accepted toasts out to the registered deliverers.
//
// A Center holds no package-level state and performs no work before
// Start. Construct one per application and tie Start/Stop to the app
// lifecycle.
type Center struct {
	deliverers  []Deliverer
	dedupWindow time.Duration
	logger      *slog.Logger

	mu        sync.Mutex
	started   bool
	dedup     cache.Cache[string]
	ownsCache bool
}

// NewCenter creates a notification center with the given options.
// The center rejects toasts until Start is called.
func NewCenter(opts ...Option) *Center {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Center{
		deliverers:  cfg.deliverers,
		dedupWindow: cfg.dedupWindow,
		logger:      cfg.logger,
		dedup:       cfg.cache,
	}
}

// Start makes the center accept toasts. When no cache was supplied via
// WithCache, an in-memory dedup cache is created here and closed by
// Stop.
func (c *Center) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}

	if c.dedup == nil && c.dedupWindow > 0 {
		c.dedup = cache.NewMemory[string](cache.WithDefaultTTL(c.dedupWindow))
		c.ownsCache = true
	}

	c.started = true
	c.logger.InfoContext(ctx, "notify center started",
		slog.Int("deliverers", len(c.deliverers)),
		slog.Duration("dedup_window", c.dedupWindow),
	)
	return nil
}

// Stop makes the center reject further toasts and releases the dedup
// cache when the center owns it.
func (c *Center) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return ErrNotStarted
	}

	if c.ownsCache {
		if err := c.dedup.Close(); err != nil {
			c.logger.WarnContext(ctx, "failed to close dedup cache",
				slog.Any("error", err),
			)
		}
		c.dedup = nil
		c.ownsCache = false
	}

	c.started = false
	c.logger.InfoContext(ctx, "notify center stopped")
	return nil
}

// Push offers a toast to every registered deliverer.
//
// Returns ErrNotStarted outside the Start/Stop window. A toast whose
// Key was already pushed within the dedup window is suppressed and Push
// returns nil. Missing ID and CreatedAt are filled in. Delivery is
// best-effort: individual deliverer failures are logged, not returned.
func (c *Center) Push(ctx context.Context, toast Toast) error {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return ErrNotStarted
	}
	dedup := c.dedup
	c.mu.Unlock()

	if toast.ID == "" {
		toast.ID = id.NewULID()
	}
	if toast.CreatedAt.IsZero() {
		toast.CreatedAt = time.Now()
	}

	if toast.Key != "" && c.dedupWindow > 0 && dedup != nil {
		if firstID, err := dedup.Get(ctx, toast.Key); err == nil {
			c.logger.DebugContext(ctx, "duplicate toast suppressed",
				slog.String("key", toast.Key),
				slog.String("first_toast_id", firstID),
			)
			return nil
		}
		if err := dedup.Set(ctx, toast.Key, toast.ID, c.dedupWindow); err != nil {
			c.logger.WarnContext(ctx, "failed to record toast key",
				slog.String("key", toast.Key),
				slog.Any("error", err),
			)
		}
	}

	for i, d := range c.deliverers {
		if err := d.Deliver(ctx, toast); err != nil {
			c.logger.ErrorContext(ctx, "toast delivery failed",
				slog.String("toast_id", toast.ID),
				slog.String("toast_key", toast.Key),
				slog.Int("deliverer", i),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// StartFunc returns a startup hook for the center.
func (c *Center) StartFunc() func(context.Context) error {
	return func(ctx context.Context) error {
		return c.Start(ctx)
	}
}

// Shutdown returns a shutdown hook for the center.
func (c *Center) Shutdown() func(context.Context) error {
	return func(ctx context.Context) error {
		return c.Stop(ctx)
	}
}
