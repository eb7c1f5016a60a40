// Package ports defines the contracts between the fulfillment core and
// its external collaborators: the order store, the stock lookup, the
// export and notification services, and the transaction boundary.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are created externally at checkout; the core reads them and
// writes back status, tracking, and notes changes.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its customer-facing order number.
	// Used by tracking ingestion, which keys rows by order number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAll retrieves all orders, optionally pre-filtered to a status
	// set. An empty status set means no restriction. Results are ordered
	// by creation time for stable downstream filtering.
	GetAll(ctx context.Context, statuses []order.Status) ([]*order.Order, error)
}
