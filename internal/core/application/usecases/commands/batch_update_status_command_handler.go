package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// BatchUpdateStatusCommandHandler applies a status transition to many
// orders with partial-failure accounting.
//
// The batch is NOT transactional: each order id runs in its own unit of
// work, so one failed order leaves the others committed. The handler
// always returns a BatchResult, even when every item failed, so the
// caller can render a complete accounting.
type BatchUpdateStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBatchUpdateStatusCommandHandler creates a handler for batch status
// transitions.
func NewBatchUpdateStatusCommandHandler(uowFactory OrderUoWFactory) BatchUpdateStatusCommandHandler {
	return BatchUpdateStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the batch command.
// Order ids are processed sequentially in the given order; a cancelled
// context makes the remaining per-order requests fail and be recorded
// like any other per-item failure, it never unwinds already-committed
// updates. The returned error is non-nil only for an invalid command.
func (h *BatchUpdateStatusCommandHandler) Handle(
	ctx context.Context,
	cmd BatchUpdateStatusCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{Requested: len(cmd.OrderIDs())}
	for _, orderID := range cmd.OrderIDs() {
		if err := h.updateOne(ctx, orderID, cmd.Target()); err != nil {
			result.recordFailure(fmt.Sprintf("order %s: %v", orderID, err))
			continue
		}
		result.recordSuccess()
	}

	return result, nil
}

func (h *BatchUpdateStatusCommandHandler) updateOne(
	ctx context.Context,
	orderID kernel.UUID,
	target order.Status,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = o.TransitionTo(target); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
