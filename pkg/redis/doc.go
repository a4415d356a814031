// Package redis provides Redis client utilities for the app's optional
// distributed cache and the background job queue's fast paths.
//
// This package wraps [github.com/redis/go-redis/v9] with connection
// retries, pooling defaults, a health check, and a graceful shutdown
// hook. Redis is optional in single-process deployments; when REDIS_URL
// is set, the app's caches switch from in-memory to Redis.
//
// # Usage
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//		redis.WithPoolSize(20),
//		redis.WithMinIdleConns(5),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// (TLS) URL schemes work. Connection
// parameters are tuned through functional options: pool size, idle and
// lifetime limits, retry policy, and operation timeouts.
//
// # Health Checks and Shutdown
//
// [Healthcheck] returns a func(context.Context) error for readiness
// probes; [Shutdown] produces a hook for the app's graceful teardown:
//
//	app := daybook.New(
//		daybook.WithHealthcheck("redis", redis.Healthcheck(client)),
//		daybook.WithShutdownHook(redis.Shutdown(client)),
//	)
//
// # Error Handling
//
// Sentinel errors: [ErrEmptyConnectionURL], [ErrFailedToParseURL],
// [ErrConnectionFailed] (after all retries), and
// [ErrHealthcheckFailed]. Causes are attached with errors.Join.
package redis
