package order

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTrackingNumberIsRequired is returned when a shipment is requested
	// without a tracking number.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("tracking number")
)

// Address holds the shipping destination captured at checkout.
// It is carried verbatim for display and export; the core performs no
// address validation or normalization.
type Address struct {
	Street1    string
	Street2    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Totals groups the monetary amounts of an order.
// All amounts are non-negative; Total is the amount charged.
type Totals struct {
	Subtotal kernel.Money
	Shipping kernel.Money
	Tax      kernel.Money
	Discount kernel.Money
	Total    kernel.Money
}

// Validate ensures every amount was constructed through kernel.NewMoneyFromCents.
func (t Totals) Validate() error {
	return errors.Join(
		t.Subtotal.Validate(),
		t.Shipping.Validate(),
		t.Tax.Validate(),
		t.Discount.Validate(),
		t.Total.Validate(),
	)
}

// Order is the aggregate root for a customer order moving through
// fulfillment. It is created externally at checkout and mutated only
// through status transitions and tracking assignment; the core never
// deletes orders.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Monetary totals are non-negative
//   - Status transitions follow the rules defined on Status
//   - Entering Shipped requires a non-empty tracking number
//   - Items are immutable after construction
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the carrier/customer-facing order number (unique)
	number string

	// status represents the current state in the fulfillment lifecycle
	status Status

	// totals holds the order's monetary amounts
	totals Totals

	// customerName and customerEmail identify the buyer
	customerName  string
	customerEmail string

	// shippingAddress is the delivery destination
	shippingAddress Address

	// trackingNumber and trackingURL are nil until the order ships
	trackingNumber *string
	trackingURL    *string

	// notes holds free-text internal notes, nil when absent
	notes *string

	// createdAt is the checkout timestamp
	createdAt time.Time

	// items is the ordered collection of order lines
	items []Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates an Order in Pending status with validation. Orders are
// created externally upon checkout; this constructor exists for ingesting
// them into the core and for tests.
//
// Returns a validation error if the identifier, order number, totals,
// creation timestamp, or any item is invalid.
func NewOrder(
	id kernel.UUID,
	number string,
	customerName string,
	customerEmail string,
	shippingAddress Address,
	totals Totals,
	createdAt time.Time,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:          Pending,
		customerName:    customerName,
		customerEmail:   customerEmail,
		shippingAddress: shippingAddress,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setTotals(totals),
		o.setCreatedAt(createdAt),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// current status, tracking data, and notes. Used by repository adapters;
// the status must be valid but transition rules are not re-applied.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerName string,
	customerEmail string,
	shippingAddress Address,
	totals Totals,
	createdAt time.Time,
	items []Item,
	status Status,
	trackingNumber *string,
	trackingURL *string,
	notes *string,
) (*Order, error) {
	o, err := NewOrder(id, number, customerName, customerEmail, shippingAddress, totals, createdAt, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	o.status = status
	o.trackingNumber = trackingNumber
	o.trackingURL = trackingURL
	o.notes = notes
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the customer-facing order number.
func (o *Order) Number() string {
	return o.number
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Totals returns the order's monetary amounts.
func (o *Order) Totals() Totals {
	return o.totals
}

// CustomerName returns the buyer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the buyer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// TrackingNumber returns the carrier tracking number.
// Returns nil until the order ships.
func (o *Order) TrackingNumber() *string {
	return o.trackingNumber
}

// TrackingURL returns the public tracking link.
// Returns nil until the order ships, and stays nil for unknown carriers
// when no explicit URL was supplied.
func (o *Order) TrackingURL() *string {
	return o.trackingURL
}

// Notes returns the free-text internal notes, nil when absent.
func (o *Order) Notes() *string {
	return o.notes
}

// HasNotes reports whether the order carries non-blank internal notes.
func (o *Order) HasNotes() bool {
	return o.notes != nil && strings.TrimSpace(*o.notes) != ""
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the ordered collection of order lines.
func (o *Order) Items() []Item {
	return o.items
}

// TransitionTo moves the order to the target status.
//
// Shipped is not a legal target for this method: carrier handoff carries
// tracking data and must go through Ship. All other transitions are
// validated by the status state machine and rejected with a *StateError
// when illegal.
func (o *Order) TransitionTo(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if target == Shipped {
		return ErrTrackingNumberIsRequired
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship transitions the order to Shipped and records tracking data.
//
// The tracking number is mandatory. When no explicit tracking URL is
// supplied, one is synthesized from the carrier's URL template; unknown
// carriers leave the URL blank rather than failing. A successful Ship
// means a customer notification should be dispatched by the caller; the
// core only records the state change.
//
// Returns ErrTrackingNumberIsRequired when the tracking number is blank,
// or a *StateError when shipping is not legal from the current status.
func (o *Order) Ship(trackingNumber, trackingURL, carrier string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	newStatus, err := o.status.TransitionTo(Shipped)
	if err != nil {
		return err
	}

	if trackingURL == "" {
		trackingURL = TrackingURLForCarrier(carrier, trackingNumber)
	}

	o.status = newStatus
	o.trackingNumber = &trackingNumber
	if trackingURL != "" {
		o.trackingURL = &trackingURL
	} else {
		o.trackingURL = nil
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
