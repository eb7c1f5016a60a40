package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move one order to a
// new fulfillment status. For shipment the command carries tracking data;
// the tracking URL and carrier are optional (a missing URL is synthesized
// from the carrier's template).
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Shipped, "9400...", "", "usps")
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	target         order.Status
	trackingNumber string
	trackingURL    string
	carrier        string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status-transition command.
// Validates that the order id and the target status are valid; whether
// the transition itself is legal is decided by the aggregate at handling
// time.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	trackingNumber string,
	trackingURL string,
	carrier string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		trackingNumber: trackingNumber,
		trackingURL:    trackingURL,
		carrier:        carrier,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// TrackingNumber returns the carrier tracking number for shipments.
func (c UpdateOrderStatusCommand) TrackingNumber() string {
	return c.trackingNumber
}

// TrackingURL returns the explicit tracking link, empty to synthesize one.
func (c UpdateOrderStatusCommand) TrackingURL() string {
	return c.trackingURL
}

// Carrier returns the carrier label used for URL synthesis.
func (c UpdateOrderStatusCommand) Carrier() string {
	return c.carrier
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
