package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// DefaultLowStockThreshold is the stock level below which an in-stock
// product is still flagged as running low. Deployments override it via
// configuration.
const DefaultLowStockThreshold = 5

// Tier classifies the stock risk of one order line.
type Tier int

const (
	// TierOK means current stock comfortably covers the ordered quantity.
	TierOK Tier = iota

	// TierLow means stock still covers the order but sits below the
	// low-stock threshold.
	TierLow

	// TierCritical means the ordered quantity exceeds current stock and
	// the line cannot be fully fulfilled. Missing stock data also maps
	// here: the classifier fails safe toward over-caution.
	TierCritical
)

// String returns the tier name used for display and persistence.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierCritical:
		return "critical"
	default:
		return "ok"
	}
}

// StockKey identifies a product or product variant in a stock snapshot.
// VariantID is the zero UUID for plain products.
type StockKey struct {
	ProductID kernel.UUID
	VariantID kernel.UUID
}

// NewStockKey builds a StockKey for a product and optional variant.
func NewStockKey(productID kernel.UUID, variantID *kernel.UUID) StockKey {
	key := StockKey{ProductID: productID}
	if variantID != nil {
		key.VariantID = *variantID
	}
	return key
}

// StockSnapshot maps product/variant identities to current quantity
// available, as returned by the external stock lookup.
type StockSnapshot map[StockKey]int

// InventoryAlert is the derived stock-risk classification for one order
// line. Alerts are recomputed on demand and never stored.
type InventoryAlert struct {
	ProductID    kernel.UUID
	VariantID    *kernel.UUID
	ProductTitle string
	VariantTitle string
	Stock        int
	Ordered      int
	Tier         Tier
}

// InventoryRollup aggregates per-line tiers into order-level counts for
// compact display.
type InventoryRollup struct {
	Critical int
	Low      int
	OK       int
}

// HasIssues reports whether any line is below the ok tier.
func (r InventoryRollup) HasIssues() bool {
	return r.Critical > 0 || r.Low > 0
}

// InventoryClassifier compares ordered quantities against a stock
// snapshot and assigns a risk tier per order line.
//
// Classification rules:
//   - critical: ordered quantity exceeds current stock
//   - low: stock covers the order but is below the configured threshold
//   - ok: otherwise
//
// A product/variant absent from the snapshot classifies as critical with
// zero stock rather than silently passing as ok.
type InventoryClassifier struct {
	lowStockThreshold int
}

// NewInventoryClassifier creates a classifier with the given low-stock
// threshold. Thresholds below one fall back to the default.
func NewInventoryClassifier(lowStockThreshold int) InventoryClassifier {
	if lowStockThreshold < 1 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return InventoryClassifier{lowStockThreshold: lowStockThreshold}
}

// Classify produces one InventoryAlert per order line plus the order-level
// rollup. The input order lines and snapshot are not mutated.
func (c InventoryClassifier) Classify(items []order.Item, stock StockSnapshot) ([]InventoryAlert, InventoryRollup) {
	alerts := make([]InventoryAlert, 0, len(items))
	var rollup InventoryRollup

	for _, item := range items {
		alert := InventoryAlert{
			ProductID:    item.ProductID(),
			VariantID:    item.VariantID(),
			ProductTitle: item.ProductTitle(),
			VariantTitle: item.VariantTitle(),
			Ordered:      item.Quantity(),
		}

		quantity, found := stock[NewStockKey(item.ProductID(), item.VariantID())]
		switch {
		case !found:
			alert.Tier = TierCritical
		case quantity < item.Quantity():
			alert.Stock = quantity
			alert.Tier = TierCritical
		case quantity < c.lowStockThreshold:
			alert.Stock = quantity
			alert.Tier = TierLow
		default:
			alert.Stock = quantity
			alert.Tier = TierOK
		}

		switch alert.Tier {
		case TierCritical:
			rollup.Critical++
		case TierLow:
			rollup.Low++
		case TierOK:
			rollup.OK++
		}

		alerts = append(alerts, alert)
	}

	return alerts, rollup
}
