// Package daybook is the application toolkit behind a personal
// journaling web app: form state handling, content sanitization,
// journals and entries on Postgres, a small CMS with contact intake,
// toast notifications, markdown email, S3 media storage, and
// River-backed background jobs, assembled into one lifecycle.
//
// The root package is a thin facade. The domain packages under pkg/
// stand on their own and can be used piecemeal; this package wires
// them together from the environment and runs them.
//
// # Quick Start
//
// Assemble the application with daybook.New(), mount whatever HTTP
// surface you want on top, and call Run() to start everything and
// block until shutdown:
//
//	app, err := daybook.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /health/live", app.LivenessHandler())
//	mux.Handle("GET /health/ready", app.ReadinessHandler())
//	mux.Handle("GET /posts/{slug}", showPost(app.CMS()))
//
//	go http.ListenAndServe(":8080", mux)
//
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Only DATABASE_URL is required. REDIS_URL moves caches and toast
// dedup to redis, RESEND_API_KEY enables email, MEDIA_S3_* enables
// uploads, and ADMIN_EMAIL turns on contact notifications.
//
// # Services
//
// The assembled app exposes its services through accessors:
//
//	entries := app.Journal()
//	posts := app.CMS()
//	toasts := app.Notify()
//
// Handlers receive these via constructor injection, not through
// context helpers.
//
// # Background work
//
// Contact notifications and the daily reminder run on the built-in
// job manager. Custom tasks join through WithJobOptions:
//
//	app, err := daybook.New(ctx,
//	    daybook.WithJobOptions(job.WithTask(exportTask)),
//	)
//
// # Shutdown
//
// Run handles SIGINT and SIGTERM. Components stop in reverse start
// order under SHUTDOWN_TIMEOUT. Register extra cleanup with
// WithShutdownHook:
//
//	daybook.New(ctx,
//	    daybook.WithShutdownHook(func(ctx context.Context) error {
//	        return search.Close()
//	    }),
//	)
package daybook
