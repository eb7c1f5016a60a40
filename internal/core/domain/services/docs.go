// Package services provides domain services that derive fulfillment
// decisions from order data without mutating it. It implements business
// logic that spans an order and external snapshots and therefore does not
// belong to a single aggregate root.
//
// The package includes:
//   - WeightEstimator: Derives a shippable package weight from order lines
//   - InventoryClassifier: Assigns a stock-risk tier per order line
//   - OrderFilter: Evaluates filter criteria against an order collection
//
// Every computation here is a pure function of (order, external snapshot):
// results are recomputed on demand and never stored, and no Order or Item
// is mutated as a side effect of derivation.
package services
