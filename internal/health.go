package internal

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/daybook/pkg/health"
)

// Healthcheck runs every registered readiness check and reports the
// aggregated result. Useful from cron or a deploy script; HTTP
// services should prefer ReadinessHandler.
func (a *App) Healthcheck(ctx context.Context) error {
	return health.Run(ctx, a.checks, health.WithLogger(a.logger)).Err()
}

// LivenessHandler answers that the process is up. Mount it wherever
// the embedding app serves HTTP:
//
//	mux.Handle("GET /health/live", app.LivenessHandler())
func (a *App) LivenessHandler() http.HandlerFunc {
	return health.LivenessHandler()
}

// ReadinessHandler runs the registered checks per request and answers
// 503 when any fail:
//
//	mux.Handle("GET /health/ready", app.ReadinessHandler())
func (a *App) ReadinessHandler() http.HandlerFunc {
	return health.ReadinessHandler(a.checks, health.WithLogger(a.logger))
}
