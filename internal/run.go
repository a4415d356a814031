package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Run starts every component in registration order and blocks until
// the context is cancelled, an interrupt arrives, or Stop is called.
// Shutdown stops components in reverse order under the configured
// timeout. Run returns nil on a clean shutdown.
//
// Example:
//
//	app, err := daybook.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
func (a *App) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.startAll(ctx); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "daybook running",
		slog.String("app", a.cfg.AppName),
		slog.String("url", a.cfg.AppURL),
	)

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case <-a.done:
		a.logger.Info("stop requested")
	}

	return a.stopAll()
}

// Stop triggers a graceful shutdown of a running app. Safe to call
// from any goroutine and more than once.
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.done) })
}

// Close stops all components without going through Run. Use it when
// the app was assembled only for its services, for example in a CLI
// command that never calls Run.
func (a *App) Close() error {
	return a.stopAll()
}

func (a *App) startAll(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.lifecycles {
		lc := &a.lifecycles[i]
		if lc.start == nil {
			continue
		}
		if err := lc.start(ctx); err != nil {
			a.unwindLocked(i)
			return fmt.Errorf("start %s: %w", lc.name, err)
		}
		lc.started = true
		a.logger.Debug("component started", slog.String("component", lc.name))
	}
	return nil
}

// unwindLocked stops everything before index i, newest first. Callers
// hold a.mu.
func (a *App) unwindLocked(i int) {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	for j := i - 1; j >= 0; j-- {
		lc := &a.lifecycles[j]
		if !lc.started || lc.stop == nil {
			continue
		}
		if err := lc.stop(ctx); err != nil {
			a.logger.Error("component stop failed during unwind",
				slog.String("component", lc.name),
				slog.Any("error", err),
			)
		}
		lc.started = false
	}
}

func (a *App) stopAll() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	var errs []error
	for i := len(a.lifecycles) - 1; i >= 0; i-- {
		lc := &a.lifecycles[i]
		if !lc.started || lc.stop == nil {
			continue
		}
		if err := lc.stop(ctx); err != nil {
			a.logger.Error("component stop failed",
				slog.String("component", lc.name),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("stop %s: %w", lc.name, err))
		}
		lc.started = false
	}

	if len(errs) > 0 {
		a.logger.Error("shutdown completed with errors", slog.Int("failures", len(errs)))
		return errors.Join(errs...)
	}
	a.logger.Info("shutdown completed")
	return nil
}
