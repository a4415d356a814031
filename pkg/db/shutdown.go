package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Shutdown returns a function that closes the connection pool during
// graceful shutdown.
//
// Example:
//
//	app := daybook.New(
//	    daybook.WithShutdownHook(db.Shutdown(pool)),
//	)
func Shutdown(pool *pgxpool.Pool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		pool.Close()
		return nil
	}
}
