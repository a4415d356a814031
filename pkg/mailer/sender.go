package mailer

import "context"

// Sender delivers a fully-prepared Email through a provider.
// Implementations must not mutate the message.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}
