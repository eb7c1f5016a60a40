package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Notifier receives shipment events for customer notification.
// Fire-and-forget from the core's perspective: the core emits the intent
// after a successful state change and does not depend on the outcome;
// implementations own delivery and retries.
type Notifier interface {
	// OrderShipped signals that the order shipped and the customer
	// should be notified.
	OrderShipped(ctx context.Context, orderID kernel.UUID)
}
