// Package health aggregates named health checks and exposes them as
// plain HTTP handlers and as a programmatic readiness call.
//
// The db, redis, and job packages each produce a healthcheck closure
// with the func(context.Context) error signature; this package fans a
// set of them out in parallel, applies a timeout, and reports the
// combined result.
//
// # HTTP probes
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs the configured [Checks]. Both are plain
// http.HandlerFuncs, so they mount on whatever router the embedding
// app uses:
//
//	mux.Handle("/health/live", health.LivenessHandler())
//	mux.Handle("/health/ready", health.ReadinessHandler(health.Checks{
//	    "db":    db.Healthcheck(pool),
//	    "redis": redis.Healthcheck(client),
//	    "jobs":  job.Healthcheck(manager),
//	}))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the
// client asks for JSON via Accept: application/json or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "db":    {"status": "healthy"},
//	    "redis": {"status": "unhealthy", "error": "connection refused"}
//	  }
//	}
//
// # Programmatic checks
//
// [Run] executes the same checks without HTTP and returns the
// aggregated [Response]; [Response.Err] collapses it to an error for
// callers that only care whether everything passed:
//
//	if err := health.Run(ctx, checks).Err(); err != nil {
//	    log.Error("degraded", slog.Any("error", err))
//	}
//
// Checks that block past the configured timeout (default 5s) are
// reported as [ErrCheckTimeout]; any failure surfaces through
// [ErrCheckFailed].
package health
