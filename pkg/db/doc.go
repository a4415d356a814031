// Package db provides PostgreSQL connection utilities for the app's
// hosted backend.
//
// This package wraps [github.com/jackc/pgx/v5/pgxpool] with connection
// pooling, startup retries, a health check, and a transaction helper.
// The database schema itself is owned by the hosted backend project;
// this package only connects to it.
//
// # Configuration
//
// All settings load from environment variables:
//
//	DATABASE_URL                - PostgreSQL connection URL (required)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 10)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 2)
//	DATABASE_HEALTHCHECK_PERIOD - Health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//
// # Usage
//
//	var cfg db.Config
//	config.MustLoad(&cfg)
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
// [Healthcheck] returns a func(context.Context) error for readiness
// probes, [Shutdown] a hook for graceful teardown, and [WithTx] wraps a
// function in a transaction with rollback on error or panic:
//
//	err := db.WithTx(ctx, pool, func(tx pgx.Tx) error {
//		if _, err := tx.Exec(ctx, moveEntries, from, to); err != nil {
//			return err
//		}
//		_, err := tx.Exec(ctx, deleteJournal, from)
//		return err
//	})
package db
