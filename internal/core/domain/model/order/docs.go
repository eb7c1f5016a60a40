// Package order implements the Order aggregate and its fulfillment state
// machine following Domain-Driven Design principles.
//
// The package includes:
//   - Order: The aggregate root moving through the fulfillment lifecycle
//   - Item: An immutable order line with an optional per-unit weight
//   - Status: The state machine governing legal status transitions
//   - StateError: Rejection of illegal transitions, naming both states
//   - Carrier tracking-URL synthesis from a static template table
//
// Orders are created externally at checkout and are mutated by the core
// only through status transitions and tracking assignment.
package order
