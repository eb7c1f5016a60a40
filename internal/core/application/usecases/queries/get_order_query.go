package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with full line-item detail and
// derived annotations.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order detail query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the detail projection of one order: the full
// aggregate state plus per-line inventory alerts and the weight estimate.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Number          string
	Status          order.Status
	CustomerName    string
	CustomerEmail   string
	ShippingAddress order.Address
	Totals          order.Totals
	TrackingNumber  *string
	TrackingURL     *string
	Notes           *string
	CreatedAt       time.Time
	Items           []order.Item
	Weight          services.WeightEstimate
	Alerts          []services.InventoryAlert
	Inventory       services.InventoryRollup
}
