package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoneyFromCents. This error is returned when validating a
// zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoneyFromCents")

// Money is a value object representing a non-negative monetary amount.
// Amounts are stored in cents to avoid floating point rounding issues.
//
// The zero value of Money is invalid and must be constructed using
// NewMoneyFromCents. Money is immutable and safe for concurrent use.
//
// Example usage:
//
//	total, err := kernel.NewMoneyFromCents(4599) // $45.99
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(total.String()) // "45.99"
type Money struct {
	cents         int64
	isConstructed bool
}

// NewMoneyFromCents creates a Money value from an amount in cents.
// Negative amounts are rejected: every monetary total in the fulfillment
// domain (subtotal, shipping, tax, discount, total) is non-negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d cents is negative", cents),
		)
	}

	return Money{cents: cents, isConstructed: true}, nil
}

// Validate checks if the Money value was properly constructed.
// Returns ErrMoneyIsNotConstructed for zero values.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// LessThan reports whether this amount is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// GreaterThan reports whether this amount is strictly larger than other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// String formats the amount as dollars with two decimal places,
// e.g. 4599 cents renders as "45.99".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
