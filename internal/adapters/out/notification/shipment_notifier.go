// Package notification emits customer notification intents for shipment
// events. The core hands off the intent after a successful commit; actual
// email delivery belongs to an external service and is represented here
// by a structured log record that a delivery pipeline can consume.
package notification

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
)

// ShipmentNotifier logs shipment notification intents.
type ShipmentNotifier struct {
	logger *slog.Logger
}

// NewShipmentNotifier creates a notifier writing to the given logger.
func NewShipmentNotifier(logger *slog.Logger) *ShipmentNotifier {
	return &ShipmentNotifier{
		logger: logger.With("component", "shipment_notifier"),
	}
}

// OrderShipped records that the customer should be notified about the
// shipment. Fire-and-forget: failures never surface back to the caller.
func (n *ShipmentNotifier) OrderShipped(ctx context.Context, orderID kernel.UUID) {
	n.logger.InfoContext(ctx, "Order shipped, customer notification requested", "order_id", orderID.String())
}
