package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ListOrdersQueryHandler retrieves orders with filtering and per-order
// weight and inventory annotations.
//
// The handler takes one stock snapshot per invocation and classifies
// every order against it, so all rows in a single response are
// consistent with each other. A failed stock lookup does not fail the
// list: the classifier fails safe and marks affected lines critical.
type ListOrdersQueryHandler struct {
	orderRepo   ports.OrderRepository
	stockLookup ports.StockLookup
	estimator   services.WeightEstimator
	classifier  services.InventoryClassifier
	filter      services.OrderFilter
}

// NewListOrdersQueryHandler creates a handler for order-list queries.
func NewListOrdersQueryHandler(
	orderRepo ports.OrderRepository,
	stockLookup ports.StockLookup,
	classifier services.InventoryClassifier,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orderRepo:   orderRepo,
		stockLookup: stockLookup,
		estimator:   services.NewWeightEstimator(),
		classifier:  classifier,
		filter:      services.NewOrderFilter(),
	}
}

// Handle executes the list query.
// Orders are loaded with a status pre-filter when the criteria restrict
// statuses, annotated, run through the filter engine, and returned in
// creation order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	criteria := query.Criteria()
	orders, err := h.orderRepo.GetAll(ctx, criteria.Statuses)
	if err != nil {
		return nil, err
	}

	rollups := h.classifyAll(ctx, orders)
	lowInventory := func(o *order.Order) bool {
		return rollups[o.ID()].HasIssues()
	}

	filtered := h.filter.Apply(orders, criteria, lowInventory)

	summaries := make([]OrderSummary, 0, len(filtered))
	for _, o := range filtered {
		summaries = append(summaries, OrderSummary{
			ID:             o.ID(),
			Number:         o.Number(),
			Status:         o.Status(),
			CustomerName:   o.CustomerName(),
			CustomerEmail:  o.CustomerEmail(),
			Total:          o.Totals().Total,
			CreatedAt:      o.CreatedAt(),
			TrackingNumber: o.TrackingNumber(),
			TrackingURL:    o.TrackingURL(),
			HasNotes:       o.HasNotes(),
			ItemCount:      len(o.Items()),
			Weight:         h.estimator.Estimate(o.Items()),
			Inventory:      rollups[o.ID()],
		})
	}

	return summaries, nil
}

// classifyAll classifies every order against one shared stock snapshot.
// A lookup failure yields an empty snapshot, which the classifier treats
// as all lines critical.
func (h ListOrdersQueryHandler) classifyAll(
	ctx context.Context,
	orders []*order.Order,
) map[kernel.UUID]services.InventoryRollup {
	keys := collectStockKeys(orders)

	snapshot, err := h.stockLookup.StockLevels(ctx, keys)
	if err != nil {
		snapshot = services.StockSnapshot{}
	}

	rollups := make(map[kernel.UUID]services.InventoryRollup, len(orders))
	for _, o := range orders {
		_, rollup := h.classifier.Classify(o.Items(), snapshot)
		rollups[o.ID()] = rollup
	}
	return rollups
}

func collectStockKeys(orders []*order.Order) []services.StockKey {
	seen := make(map[services.StockKey]struct{})
	keys := make([]services.StockKey, 0)
	for _, o := range orders {
		for _, item := range o.Items() {
			key := services.NewStockKey(item.ProductID(), item.VariantID())
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}
