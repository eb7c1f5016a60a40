package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrBatchUpdateStatusCommandIsNotConstructed = errors.New(
		"BatchUpdateStatusCommand must be created via NewBatchUpdateStatusCommand constructor",
	)
	ErrNoOrderIDs = errors.New("at least one order id is required")
)

// BatchUpdateStatusCommand represents a request to apply one status
// transition across many orders. Each order is processed independently:
// a failure on one id never blocks or rolls back the others.
//
// Example:
//
//	cmd, err := NewBatchUpdateStatusCommand(selectedIDs, order.Processing)
//	if err != nil {
//	    return fmt.Errorf("invalid batch: %w", err)
//	}
//
//	handler := NewBatchUpdateStatusCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d/%d updated, %d failed\n", result.Succeeded, result.Requested, len(result.Errors))
type BatchUpdateStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	target   order.Status

	guard guard.ConstructorGuard
}

// NewBatchUpdateStatusCommand creates a batch status-transition command.
// Validates that at least one order id is supplied, every id is valid,
// and the target status is valid.
func NewBatchUpdateStatusCommand(orderIDs []kernel.UUID, target order.Status) (BatchUpdateStatusCommand, error) {
	cmd := BatchUpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setTarget(target),
	); err != nil {
		return BatchUpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BatchUpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrBatchUpdateStatusCommandIsNotConstructed)
}

// OrderIDs returns the order identifiers the batch applies to.
func (c BatchUpdateStatusCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Target returns the requested status.
func (c BatchUpdateStatusCommand) Target() order.Status {
	return c.target
}

func (c *BatchUpdateStatusCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrNoOrderIDs
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderIDs = orderIDs
	return nil
}

func (c *BatchUpdateStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
