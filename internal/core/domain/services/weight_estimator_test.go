package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemWithWeight(t *testing.T, quantity int, weight *float64) order.Item {
	t.Helper()
	price, err := kernel.NewMoneyFromCents(1000)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), nil, "Widget", "", quantity, price, weight)
	require.NoError(t, err)
	return item
}

func TestWeightEstimator_Estimate(t *testing.T) {
	estimator := services.NewWeightEstimator()

	t.Run("empty order yields just the packaging overhead", func(t *testing.T) {
		estimate := estimator.Estimate(nil)

		assert.InEpsilon(t, services.PackagingOverheadOunces, estimate.TotalOunces, 1e-9)
		assert.False(t, estimate.HasUnknownWeights)
		assert.Equal(t, services.WeightSourceProductData, estimate.Source)
	})

	t.Run("known weights multiply by quantity", func(t *testing.T) {
		w1, w2 := 4.0, 10.0
		items := []order.Item{
			itemWithWeight(t, 3, &w1),
			itemWithWeight(t, 1, &w2),
		}

		estimate := estimator.Estimate(items)

		assert.InEpsilon(t, services.PackagingOverheadOunces+3*4.0+10.0, estimate.TotalOunces, 1e-9)
		assert.False(t, estimate.HasUnknownWeights)
		assert.Equal(t, services.WeightSourceProductData, estimate.Source)
	})

	t.Run("unknown weight falls back to default and flags the estimate", func(t *testing.T) {
		items := []order.Item{itemWithWeight(t, 2, nil)}

		estimate := estimator.Estimate(items)

		assert.InEpsilon(t,
			services.PackagingOverheadOunces+2*services.DefaultItemWeightOunces,
			estimate.TotalOunces, 1e-9)
		assert.True(t, estimate.HasUnknownWeights)
		assert.Equal(t, services.WeightSourceEstimated, estimate.Source)
	})

	t.Run("one unknown item marks the whole order estimated", func(t *testing.T) {
		known := 4.0
		items := []order.Item{
			itemWithWeight(t, 1, &known),
			itemWithWeight(t, 1, nil),
		}

		estimate := estimator.Estimate(items)

		assert.True(t, estimate.HasUnknownWeights)
		assert.Equal(t, services.WeightSourceEstimated, estimate.Source)
	})

	t.Run("zero weight counts as known", func(t *testing.T) {
		zero := 0.0
		items := []order.Item{itemWithWeight(t, 5, &zero)}

		estimate := estimator.Estimate(items)

		assert.InEpsilon(t, services.PackagingOverheadOunces, estimate.TotalOunces, 1e-9)
		assert.False(t, estimate.HasUnknownWeights)
		assert.Equal(t, services.WeightSourceProductData, estimate.Source)
	})
}
