package services

import "fulfillment/internal/core/domain/model/order"

const (
	// PackagingOverheadOunces is the fixed box/padding weight added to
	// every package estimate regardless of contents.
	PackagingOverheadOunces = 6.0

	// DefaultItemWeightOunces substitutes for items whose catalog entry
	// carries no weight.
	DefaultItemWeightOunces = 8.0
)

// Weight source descriptors. "from product data" is only used when every
// item contributed a known weight.
const (
	WeightSourceProductData = "from product data"
	WeightSourceEstimated   = "estimated"
)

// WeightEstimate is the derived shipping weight of one order snapshot.
// HasUnknownWeights is true when at least one item's weight had to be
// substituted with the default.
type WeightEstimate struct {
	TotalOunces       float64
	Source            string
	HasUnknownWeights bool
}

// WeightEstimator derives a shippable package weight from an order's
// line items. It is a total, pure function over the item list: it never
// fails, and an order with zero items yields just the packaging overhead.
//
// Example usage:
//
//	estimator := services.NewWeightEstimator()
//	estimate := estimator.Estimate(o.Items())
//	if estimate.HasUnknownWeights {
//	    // surface that the weight is approximate
//	}
type WeightEstimator struct {
	packagingOverheadOunces float64
	defaultItemWeightOunces float64
}

// NewWeightEstimator creates an estimator with the standard packaging
// overhead and default item weight.
func NewWeightEstimator() WeightEstimator {
	return WeightEstimator{
		packagingOverheadOunces: PackagingOverheadOunces,
		defaultItemWeightOunces: DefaultItemWeightOunces,
	}
}

// Estimate computes the package weight for the given order lines.
//
// The estimate starts from the packaging overhead. Each item with a known
// per-unit weight contributes weight × quantity; items without one
// contribute the default weight instead and mark the whole estimate as
// approximate.
func (e WeightEstimator) Estimate(items []order.Item) WeightEstimate {
	estimate := WeightEstimate{
		TotalOunces: e.packagingOverheadOunces,
		Source:      WeightSourceProductData,
	}

	for _, item := range items {
		if weight := item.UnitWeightOunces(); weight != nil {
			estimate.TotalOunces += *weight * float64(item.Quantity())
		} else {
			estimate.TotalOunces += e.defaultItemWeightOunces * float64(item.Quantity())
			estimate.HasUnknownWeights = true
		}
	}

	if estimate.HasUnknownWeights {
		estimate.Source = WeightSourceEstimated
	}

	return estimate
}
