package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a single status transition.
// The aggregate enforces transition legality and tracking requirements;
// the handler owns the transaction and the post-commit notification
// intent for shipments.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for single-order
// status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status transition command.
// Loads the order, applies the transition through the state machine, and
// persists the change transactionally. A transition to Shipped records
// tracking data and, after the commit succeeds, emits the customer
// notification intent. The core never sends the email itself.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	shipped := cmd.Target() == order.Shipped
	if shipped {
		err = o.Ship(cmd.TrackingNumber(), cmd.TrackingURL(), cmd.Carrier())
	} else {
		err = o.TransitionTo(cmd.Target())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if shipped && h.notifier != nil {
		h.notifier.OrderShipped(ctx, o.ID())
	}

	return nil
}
