package notification

import "context"

// Sink relays an already formatted message to the operators' channel.
// Delivery is best-effort: callers log failures and move on, the persisted
// order is the source of truth.
type Sink interface {
	Send(ctx context.Context, text string) error
}
