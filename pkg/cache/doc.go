// Package cache provides a generic Cache interface with in-memory and
// Redis implementations.
//
// The app leans on this package for its hot read paths: a user's
// journal list, published posts looked up by slug, the about-page
// sections, and the notification center's dedup window all sit behind
// [Cache]. Both backends implement the same interface, so a
// single-process deployment runs on [Memory] while a multi-instance
// one points the same call sites at [Redis].
//
// # Interface
//
// [Cache] is generic over the value type V:
//
//   - Get(ctx, key) (V, error)
//   - Set(ctx, key, value, ttl) error
//   - Delete(ctx, key) error
//   - Has(ctx, key) (bool, error)
//   - Clear(ctx) error
//   - Close() error
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL (1 hour by default)
//   - Negative: item never expires
//
// # In-Memory Cache
//
// [NewMemory] backs the default single-process deployment. Lookups are
// O(1) via a hash map; LRU eviction is O(1) via a doubly-linked list;
// a background janitor removes expired entries:
//
//	journals := cache.NewMemory[[]journal.Journal](
//	    cache.WithDefaultTTL(5*time.Minute),
//	    cache.WithCleanupInterval(30*time.Second),
//	    cache.WithMaxEntries(10000),
//	)
//	defer journals.Close()
//
// SetEvictCallback registers cleanup for values that hold resources;
// it fires on LRU eviction, expiration, deletion, and clearing.
//
// # Redis Cache
//
// [NewRedis] serves deployments with more than one app instance, using
// a client from pkg/redis:
//
//	client := redis.MustOpen(ctx, os.Getenv("REDIS_URL"))
//	posts := cache.NewRedis[cms.Post](client, nil,
//	    cache.WithPrefix("posts"),
//	    cache.WithRedisDefaultTTL(10*time.Minute),
//	)
//
// Pass a custom [Marshaler] to change the serialization format; nil
// means JSON.
//
// # Cache Stampede Prevention
//
// [GetOrSet] computes missing values through singleflight, so
// concurrent misses on one key share a single load:
//
//	list, err := cache.GetOrSet(ctx, journals, "journals:"+ownerID,
//	    func(ctx context.Context) ([]journal.Journal, time.Duration, error) {
//	        js, err := svc.ListJournals(ctx, ownerID)
//	        return js, 5 * time.Minute, err
//	    })
//
// # Error Handling
//
// Sentinel errors: [ErrNotFound] (missing or expired key), [ErrClosed]
// (operation on a closed cache), [ErrMarshal] and [ErrUnmarshal]
// (serialization failures). Check them with errors.Is.
package cache
