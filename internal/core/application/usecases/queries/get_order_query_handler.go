package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order with its derived weight
// estimate and per-line inventory alerts.
type GetOrderQueryHandler struct {
	orderRepo   ports.OrderRepository
	stockLookup ports.StockLookup
	estimator   services.WeightEstimator
	classifier  services.InventoryClassifier
}

// NewGetOrderQueryHandler creates a handler for single-order detail
// queries.
func NewGetOrderQueryHandler(
	orderRepo ports.OrderRepository,
	stockLookup ports.StockLookup,
	classifier services.InventoryClassifier,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderRepo:   orderRepo,
		stockLookup: stockLookup,
		estimator:   services.NewWeightEstimator(),
		classifier:  classifier,
	}
}

// Handle executes the detail query.
// A failed stock lookup does not fail the read: the classifier fails
// safe and marks every line critical.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	keys := make([]services.StockKey, 0, len(o.Items()))
	for _, item := range o.Items() {
		keys = append(keys, services.NewStockKey(item.ProductID(), item.VariantID()))
	}

	snapshot, err := h.stockLookup.StockLevels(ctx, keys)
	if err != nil {
		snapshot = services.StockSnapshot{}
	}

	alerts, rollup := h.classifier.Classify(o.Items(), snapshot)

	return GetOrderQueryResponse{
		ID:              o.ID(),
		Number:          o.Number(),
		Status:          o.Status(),
		CustomerName:    o.CustomerName(),
		CustomerEmail:   o.CustomerEmail(),
		ShippingAddress: o.ShippingAddress(),
		Totals:          o.Totals(),
		TrackingNumber:  o.TrackingNumber(),
		TrackingURL:     o.TrackingURL(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		Items:           o.Items(),
		Weight:          h.estimator.Estimate(o.Items()),
		Alerts:          alerts,
		Inventory:       rollup,
	}, nil
}
