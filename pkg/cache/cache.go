package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a generic key-value cache with TTL support. The app keeps
// hot read paths (journal lists, published posts, site sections) behind
// this interface so a single-process deployment can run on Memory and a
// multi-instance one on Redis without touching call sites.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Has checks whether a key exists and has not expired.
	Has(ctx context.Context, key string) (bool, error)

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

// inflight deduplicates concurrent loads across all caches in the
// process. Keys carry their cache's namespace, so cross-cache
// collisions require two callers using the same raw key on purpose.
var inflight singleflight.Group

type computed[V any] struct {
	val V
	ttl time.Duration
}

// GetOrSet retrieves a value from the cache, or calls fn to compute it
// on a miss. Concurrent callers with the same key share one fn call, so
// a burst of readers right after an invalidation does not stampede the
// database.
//
// fn returns the value, a TTL for caching, and an error. On error
// nothing is cached and the error is returned to every waiting caller.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := inflight.Do(key, func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return computed[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r := v.(computed[V])

	// Caching the result is best-effort; the value is already in hand.
	_ = c.Set(ctx, key, r.val, r.ttl)

	return r.val, nil
}
