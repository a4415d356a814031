package notify

import "context"

// Deliverer receives toasts accepted by the Center.
//
// Implementations are transport adapters: an SSE hub, a websocket
// session registry, a test recorder. Deliver must be safe for
// concurrent use.
type Deliverer interface {
	Deliver(ctx context.Context, toast Toast) error
}

// DelivererFunc adapts a plain function to the Deliverer interface.
type DelivererFunc func(ctx context.Context, toast Toast) error

// Deliver calls f(ctx, toast).
func (f DelivererFunc) Deliver(ctx context.Context, toast Toast) error {
	return f(ctx, toast)
}
