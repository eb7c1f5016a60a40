package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"
)

// ImportTrackingCommandHandler bulk-ships orders from an uploaded
// tracking CSV. A malformed file fails the whole command with the parser
// message; a well-formed file is processed row by row with
// partial-failure accounting, one unit of work per row.
type ImportTrackingCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewImportTrackingCommandHandler creates a handler for tracking CSV
// imports.
func NewImportTrackingCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) ImportTrackingCommandHandler {
	return ImportTrackingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle parses the uploaded CSV and ships each matched order.
// Rows are applied sequentially; a row that fails (unknown order number,
// illegal transition, storage error) is recorded in the result and never
// affects the other rows. Notification intents for shipped orders are
// emitted only after their row's commit succeeds.
func (h *ImportTrackingCommandHandler) Handle(
	ctx context.Context,
	cmd ImportTrackingCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	records, err := tracking.Parse(cmd.CSVContent())
	if err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{Requested: len(records)}
	for _, record := range records {
		shippedID, err := h.shipOne(ctx, record)
		if err != nil {
			result.recordFailure(fmt.Sprintf("order %s: %v", record.OrderNumber, err))
			continue
		}
		result.recordSuccess()

		if h.notifier != nil {
			h.notifier.OrderShipped(ctx, shippedID)
		}
	}

	return result, nil
}

func (h *ImportTrackingCommandHandler) shipOne(
	ctx context.Context,
	record tracking.TrackingRecord,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByNumber(ctx, record.OrderNumber)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = o.Ship(record.TrackingNumber, record.TrackingURL, record.Carrier); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
