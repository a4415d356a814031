package redis

import (
	"context"
	"io"
)

// Shutdown returns a function that closes the Redis client during
// graceful shutdown.
//
// Example:
//
//	app := daybook.New(
//	    daybook.WithShutdownHook(redis.Shutdown(client)),
//	)
func Shutdown(client io.Closer) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Close()
	}
}
