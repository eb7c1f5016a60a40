package order

import "fmt"

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the fulfillment workflow.
//
// State transitions:
//
//	pending ──> paid ──> processing ──> shipped ──> delivered/fulfilled
//	   │          │          │
//	   └──────────┴──────────┴──> on_hold (resumes to paid/processing)
//
//	cancelled and refunded are reachable from any non-terminal state.
//
// delivered, fulfilled, cancelled, and refunded are terminal: no further
// transitions are defined from them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status set at checkout, before payment.
	Pending

	// Paid indicates payment has been captured for the order.
	Paid

	// Processing indicates the order is being picked and packed.
	Processing

	// Shipped indicates the package has been handed to a carrier.
	// Entering this status requires a tracking number.
	Shipped

	// OnHold parks an order before shipment, e.g. pending a stock or
	// payment review. Orders resume to Paid or Processing.
	OnHold

	// Delivered indicates the carrier confirmed delivery. Terminal.
	Delivered

	// Fulfilled indicates the order was closed out by an operator. Terminal.
	Fulfilled

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled

	// Refunded indicates the order was refunded. Terminal.
	Refunded
)

// StateError is returned when a requested status transition is not legal
// from the order's current status. The engine never silently coerces an
// invalid request.
type StateError struct {
	Current   Status
	Requested Status
}

// NewStateError creates a StateError naming the current and requested states.
func NewStateError(current, requested Status) *StateError {
	return &StateError{Current: current, Requested: requested}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.Current, e.Requested)
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Paid:       "paid",
		Processing: "processing",
		Shipped:    "shipped",
		OnHold:     "on_hold",
		Delivered:  "delivered",
		Fulfilled:  "fulfilled",
		Cancelled:  "cancelled",
		Refunded:   "refunded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Paid:       "paid",
		Processing: "processing",
		Shipped:    "shipped",
		OnHold:     "on_hold",
		Delivered:  "delivered",
		Fulfilled:  "fulfilled",
		Cancelled:  "cancelled",
		Refunded:   "refunded",
	}
}

// StatusFromString parses a status name into its Status value.
// Returns Unknown and an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%q is not a valid status", s)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid status", s)
	}
	return nil
}

// String returns the machine-readable name of the status, e.g. "on_hold".
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case Delivered, Fulfilled, Cancelled, Refunded:
		return true
	default:
		return false
	}
}

// TransitionTo validates a transition from the current status to the
// requested one and returns the new status.
//
// Rules:
//   - Terminal statuses permit no transitions.
//   - Cancelled and Refunded are reachable from any non-terminal status.
//   - OnHold is reachable from Pending, Paid, and Processing; it resumes
//     to Paid or Processing.
//   - Shipped is reachable from Paid and Processing. Tracking-number
//     enforcement happens on the aggregate, not here.
//   - Delivered and Fulfilled are reachable only from Shipped.
//
// Returns (0, *StateError) when the transition is not allowed.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, NewStateError(s, target)
	}

	if s.IsTerminal() {
		return 0, NewStateError(s, target)
	}

	allowed := false
	switch target {
	case Cancelled, Refunded:
		allowed = true
	case OnHold:
		allowed = s == Pending || s == Paid || s == Processing
	case Paid:
		allowed = s == Pending || s == OnHold
	case Processing:
		allowed = s == Pending || s == Paid || s == OnHold
	case Shipped:
		allowed = s == Paid || s == Processing
	case Delivered, Fulfilled:
		allowed = s == Shipped
	case Pending, Unknown:
		allowed = false
	}

	if !allowed {
		return 0, NewStateError(s, target)
	}

	return target, nil
}
