// Package internal assembles the daybook application: it loads
// configuration, connects the database and optional redis, wires the
// journal and CMS services to their caches, sets up the notify
// center, mailer, media storage, and the job manager with the
// built-in tasks, and runs them all under one signal-aware lifecycle.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/daybook" instead, which re-exports the
// public API.
//
// # Assembly
//
// New builds the app from the environment. Only DATABASE_URL is
// required; redis, the Resend mailer, and S3 media storage each
// switch on when their configuration is present:
//
//	app, err := internal.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Options inject pre-built dependencies instead, which is how tests
// and embedding apps take control:
//
//	app, err := internal.New(ctx,
//	    internal.WithPool(pool),
//	    internal.WithSender(captureSender),
//	    internal.WithHealthCheck("search", searchPing),
//	)
//
// # Lifecycle
//
// Components start in dependency order and stop in reverse. Injected
// resources (WithPool, WithRedis) are never closed by the app; the
// caller keeps ownership. Run blocks until the context is cancelled,
// SIGINT or SIGTERM arrives, or Stop is called. Close tears down an
// app that never ran.
//
// # HTTP surface
//
// The app owns no router. The embedding app mounts whatever it wants
// on top of the exposed services and the liveness and readiness
// handlers:
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /health/live", app.LivenessHandler())
//	mux.Handle("GET /health/ready", app.ReadinessHandler())
package internal
