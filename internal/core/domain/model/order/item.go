package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a product (optionally a specific
// variant), a quantity, and a unit price. Items are immutable once the
// order is created.
//
// The per-unit weight is optional, and its absence is significant: a nil
// weight means the product catalog carries no weight for this item, which
// forces the weight estimator to fall back to a default and flag the
// whole order's estimate as approximate. A zero weight, by contrast, is a
// known weight.
type Item struct {
	// productID identifies the product this line references
	productID kernel.UUID

	// variantID identifies the specific product variant, if any
	variantID *kernel.UUID

	// productTitle is the display title captured at checkout
	productTitle string

	// variantTitle is the variant display title, empty for plain products
	variantTitle string

	// quantity is the ordered unit count (must be positive)
	quantity int

	// unitPrice is the per-unit price at checkout
	unitPrice kernel.Money

	// unitWeightOunces is the per-unit shipping weight, nil when unknown
	unitWeightOunces *float64

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates an order line with validation.
//
// Parameters:
//   - productID: referenced product (must be a valid UUID)
//   - variantID: referenced variant, nil for plain products
//   - productTitle: product display title (must not be empty)
//   - variantTitle: variant display title, empty for plain products
//   - quantity: ordered unit count (must be positive)
//   - unitPrice: per-unit price (must be constructed)
//   - unitWeightOunces: per-unit weight, nil when the catalog has none
//
// Returns the constructed item, or a validation error.
func NewItem(
	productID kernel.UUID,
	variantID *kernel.UUID,
	productTitle string,
	variantTitle string,
	quantity int,
	unitPrice kernel.Money,
	unitWeightOunces *float64,
) (Item, error) {
	item := Item{
		variantID:        variantID,
		productTitle:     productTitle,
		variantTitle:     variantTitle,
		unitWeightOunces: unitWeightOunces,
		isConstructed:    true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.validateWeight(),
		item.validateVariant(),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// VariantID returns the referenced variant's identifier.
// Returns nil for plain products without variants.
func (i Item) VariantID() *kernel.UUID {
	return i.variantID
}

// ProductTitle returns the product display title captured at checkout.
func (i Item) ProductTitle() string {
	return i.productTitle
}

// VariantTitle returns the variant display title, empty for plain products.
func (i Item) VariantTitle() string {
	return i.variantTitle
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price at checkout.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// UnitWeightOunces returns the per-unit shipping weight in ounces.
// Returns nil when the product catalog carries no weight for this item.
func (i Item) UnitWeightOunces() *float64 {
	return i.unitWeightOunces
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) validateWeight() error {
	if i.unitWeightOunces != nil && *i.unitWeightOunces < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit weight",
			fmt.Errorf("%f is negative", *i.unitWeightOunces),
		)
	}
	return nil
}

func (i *Item) validateVariant() error {
	if i.variantID != nil {
		return i.variantID.Validate()
	}
	return nil
}
