// Package notify routes in-app toast notifications through an explicit
// center instead of package-level callbacks.
//
// A Center is constructed once, wired into the application lifecycle,
// and passed to whichever layer needs to emit toasts. It suppresses
// duplicate toasts by key within a configurable window and fans
// accepted toasts out to every registered deliverer.
//
// # Usage
//
//	center := notify.NewCenter(
//	    notify.WithDeliverer(sseHub),
//	    notify.WithDedupWindow(5*time.Second),
//	    notify.WithLogger(log),
//	)
//
//	// Tie the center to the app lifecycle.
//	app := daybook.New(
//	    daybook.WithStartupHook(center.StartFunc()),
//	    daybook.WithShutdownHook(center.Shutdown()),
//	)
//
//	// Emit from anywhere that holds the center.
//	_ = center.Push(ctx, notify.Success("Entry saved", "").WithKey("entry-saved"))
//
// # Deduplication
//
// Toasts with an empty Key are never deduplicated. Toasts with the same
// non-empty Key collapse into the first one pushed until the window
// elapses. The window lives in an in-memory cache by default; pass a
// Redis-backed cache via WithCache to share the window across
// instances.
//
// # Delivery
//
// Delivery is best-effort. A failing deliverer is logged and skipped;
// Push only fails when the center is not started.
package notify
