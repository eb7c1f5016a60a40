package ports

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// StockLookup provides current stock quantities for product/variant
// identities. The core treats it as a request/response service: no
// reservations, no locking.
//
// Keys absent from the returned snapshot are classified fail-safe as
// critical by the inventory classifier, so implementations may omit
// unknown products rather than erroring.
type StockLookup interface {
	// StockLevels returns the current quantity available for each
	// requested key. Missing keys are simply absent from the result.
	StockLevels(ctx context.Context, keys []services.StockKey) (services.StockSnapshot, error)
}
