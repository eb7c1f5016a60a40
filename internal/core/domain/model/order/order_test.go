package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func validTotals(t *testing.T) order.Totals {
	t.Helper()
	return order.Totals{
		Subtotal: mustMoney(t, 4500),
		Shipping: mustMoney(t, 599),
		Tax:      mustMoney(t, 380),
		Discount: mustMoney(t, 0),
		Total:    mustMoney(t, 5479),
	}
}

func validItem(t *testing.T, weight *float64) order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), nil, "Ceramic Mug", "", 2, mustMoney(t, 2250), weight,
	)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	weight := 12.5
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"1001",
		"Ada Lovelace",
		"ada@example.com",
		order.Address{Street1: "12 Analytical Way", City: "London", PostalCode: "N1 9GU", Country: "GB"},
		validTotals(t),
		time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		[]order.Item{validItem(t, &weight)},
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order in pending status", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "1001", o.Number())
		assert.Equal(t, "Ada Lovelace", o.CustomerName())
		assert.Nil(t, o.TrackingNumber())
		assert.Nil(t, o.TrackingURL())
		assert.Nil(t, o.Notes())
		assert.False(t, o.HasNotes())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(
			invalidID, "1001", "Ada", "ada@example.com",
			order.Address{}, validTotals(t), time.Now(), nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with blank order number", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "   ", "Ada", "ada@example.com",
			order.Address{}, validTotals(t), time.Now(), nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order number")
	})

	t.Run("should fail with unconstructed totals", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1001", "Ada", "ada@example.com",
			order.Address{}, order.Totals{}, time.Now(), nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "Money must be created")
	})

	t.Run("should fail with zero creation timestamp", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1001", "Ada", "ada@example.com",
			order.Address{}, validTotals(t), time.Time{}, nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "created at")
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1001", "Ada", "ada@example.com",
			order.Address{}, validTotals(t), time.Now(), []order.Item{{}},
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "Item must be created")
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with known weight", func(t *testing.T) {
		weight := 8.0
		item, err := order.NewItem(kernel.NewUUID(), nil, "Mug", "", 1, mustMoney(t, 100), &weight)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		require.NotNil(t, item.UnitWeightOunces())
		assert.InEpsilon(t, 8.0, *item.UnitWeightOunces(), 1e-9)
	})

	t.Run("should keep absent weight distinct from zero weight", func(t *testing.T) {
		unknown, err := order.NewItem(kernel.NewUUID(), nil, "Mug", "", 1, mustMoney(t, 100), nil)
		require.NoError(t, err)
		assert.Nil(t, unknown.UnitWeightOunces())

		zero := 0.0
		weightless, err := order.NewItem(kernel.NewUUID(), nil, "Sticker", "", 1, mustMoney(t, 100), &zero)
		require.NoError(t, err)
		require.NotNil(t, weightless.UnitWeightOunces())
		assert.Zero(t, *weightless.UnitWeightOunces())
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), nil, "Mug", "", 0, mustMoney(t, 100), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")

		_, err = order.NewItem(kernel.NewUUID(), nil, "Mug", "", -3, mustMoney(t, 100), nil)
		require.Error(t, err)
	})

	t.Run("should fail with negative weight", func(t *testing.T) {
		weight := -1.0
		_, err := order.NewItem(kernel.NewUUID(), nil, "Mug", "", 1, mustMoney(t, 100), &weight)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit weight")
	})

	t.Run("should carry variant identity", func(t *testing.T) {
		variantID := kernel.NewUUID()
		item, err := order.NewItem(kernel.NewUUID(), &variantID, "Tee", "Large / Black", 1, mustMoney(t, 1900), nil)

		require.NoError(t, err)
		require.NotNil(t, item.VariantID())
		assert.True(t, item.VariantID().IsEqual(variantID))
		assert.Equal(t, "Large / Black", item.VariantTitle())
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the fulfillment lifecycle", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.TransitionTo(order.Paid))
		require.NoError(t, o.TransitionTo(order.Processing))
		require.NoError(t, o.Ship("9400110200881234567890", "", "usps"))
		require.NoError(t, o.TransitionTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject shipped as a target without tracking data", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Paid))

		err := o.TransitionTo(order.Shipped)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tracking number")
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should reject illegal transitions with a state error", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Cancelled))

		err := o.TransitionTo(order.Paid)

		var stateErr *order.StateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, order.Cancelled, stateErr.Current)
		assert.Equal(t, order.Paid, stateErr.Requested)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject transitions on unconstructed order", func(t *testing.T) {
		var o order.Order

		err := o.TransitionTo(order.Paid)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("should ship from paid and synthesize carrier URL", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Paid))

		require.NoError(t, o.Ship("9400110200881234567890", "", "usps"))

		assert.Equal(t, order.Shipped, o.Status())
		require.NotNil(t, o.TrackingNumber())
		assert.Equal(t, "9400110200881234567890", *o.TrackingNumber())
		require.NotNil(t, o.TrackingURL())
		assert.Contains(t, *o.TrackingURL(), "usps.com")
		assert.Contains(t, *o.TrackingURL(), "9400110200881234567890")
	})

	t.Run("should prefer an explicit tracking URL over synthesis", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Paid))

		require.NoError(t, o.Ship("1Z999AA10123456784", "https://example.com/track/abc", "ups"))

		require.NotNil(t, o.TrackingURL())
		assert.Equal(t, "https://example.com/track/abc", *o.TrackingURL())
	})

	t.Run("should leave URL blank for unknown carriers", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Paid))

		require.NoError(t, o.Ship("XY-77", "", "pigeon post"))

		assert.Equal(t, order.Shipped, o.Status())
		assert.Nil(t, o.TrackingURL())
	})

	t.Run("should reject blank tracking number", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Paid))

		err := o.Ship("   ", "", "usps")

		require.ErrorIs(t, err, order.ErrTrackingNumberIsRequired)
		assert.Equal(t, order.Paid, o.Status())
		assert.Nil(t, o.TrackingNumber())
	})

	t.Run("should reject shipping a cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Cancelled))

		err := o.Ship("1Z999AA10123456784", "", "ups")

		var stateErr *order.StateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "invalid status transition: cancelled -> shipped", err.Error())
	})
}

func TestTrackingURLForCarrier(t *testing.T) {
	tests := []struct {
		carrier  string
		contains string
	}{
		{"usps", "tools.usps.com"},
		{"UPS", "ups.com"},
		{"FedEx", "fedex.com"},
		{" dhl ", "dhl.com"},
	}

	for _, tt := range tests {
		t.Run(tt.carrier, func(t *testing.T) {
			url := order.TrackingURLForCarrier(tt.carrier, "TRACK123")
			assert.Contains(t, url, tt.contains)
			assert.Contains(t, url, "TRACK123")
		})
	}

	t.Run("unknown carrier yields empty URL", func(t *testing.T) {
		assert.Empty(t, order.TrackingURLForCarrier("zeppelin", "TRACK123"))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		trackingNumber := "1Z999AA10123456784"
		trackingURL := "https://www.ups.com/track?tracknum=1Z999AA10123456784"
		notes := "fragile, double-box"

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "1002", "Grace Hopper", "grace@example.com",
			order.Address{Street1: "1 Navy Yard"}, validTotals(t),
			time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), nil,
			order.Shipped, &trackingNumber, &trackingURL, &notes,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		require.NotNil(t, o.TrackingNumber())
		assert.Equal(t, trackingNumber, *o.TrackingNumber())
		assert.True(t, o.HasNotes())
	})

	t.Run("should reject invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "1002", "Grace", "grace@example.com",
			order.Address{}, validTotals(t), time.Now(), nil,
			order.Status(42), nil, nil, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("should treat blank notes as no notes", func(t *testing.T) {
		blank := "   "
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "1003", "Grace", "grace@example.com",
			order.Address{}, validTotals(t), time.Now(), nil,
			order.Pending, nil, nil, &blank,
		)

		require.NoError(t, err)
		assert.False(t, o.HasNotes())
	})
}
