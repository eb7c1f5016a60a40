// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary amounts are stored as integer cents. Items live in a child table
// and load together with the order.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number         string     `gorm:"uniqueIndex"`
	Status         int        `gorm:"index"`
	CustomerName   string
	CustomerEmail  string
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	SubtotalCents  int64
	ShippingCents  int64
	TaxCents       int64
	DiscountCents  int64
	TotalCents     int64
	TrackingNumber *string
	TrackingURL    *string
	Notes          *string
	CreatedAt      time.Time      `gorm:"index"`
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping destination within the order table.
type AddressDTO struct {
	Street1    string
	Street2    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// OrderItemDTO represents one order line. Lines are immutable after the
// order is ingested; Position preserves the original line order.
type OrderItemDTO struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position         int       `gorm:"primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid;index"`
	VariantID        *uuid.UUID `gorm:"type:uuid"`
	ProductTitle     string
	VariantTitle     string
	Quantity         int
	UnitPriceCents   int64
	UnitWeightOunces *float64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	totals := aggregate.Totals()
	address := aggregate.ShippingAddress()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		var variantID *uuid.UUID
		if id := item.VariantID(); id != nil {
			raw := id.Bytes()
			variantID = &raw
		}

		items = append(items, OrderItemDTO{
			OrderID:          aggregate.ID().Bytes(),
			Position:         position,
			ProductID:        item.ProductID().Bytes(),
			VariantID:        variantID,
			ProductTitle:     item.ProductTitle(),
			VariantTitle:     item.VariantTitle(),
			Quantity:         item.Quantity(),
			UnitPriceCents:   item.UnitPrice().Cents(),
			UnitWeightOunces: item.UnitWeightOunces(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		Status:        int(aggregate.Status()),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: aggregate.CustomerEmail(),
		Address: AddressDTO{
			Street1:    address.Street1,
			Street2:    address.Street2,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		SubtotalCents:  totals.Subtotal.Cents(),
		ShippingCents:  totals.Shipping.Cents(),
		TaxCents:       totals.Tax.Cents(),
		DiscountCents:  totals.Discount.Cents(),
		TotalCents:     totals.Total.Cents(),
		TrackingNumber: aggregate.TrackingNumber(),
		TrackingURL:    aggregate.TrackingURL(),
		Notes:          aggregate.Notes(),
		CreatedAt:      aggregate.CreatedAt(),
		Items:          items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and tracking data using RestoreOrder.
// Items are expected preloaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	totals, err := totalsFromDTO(dto)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemFromDTO(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		dto.CustomerName,
		dto.CustomerEmail,
		order.Address{
			Street1:    dto.Address.Street1,
			Street2:    dto.Address.Street2,
			City:       dto.Address.City,
			State:      dto.Address.State,
			PostalCode: dto.Address.PostalCode,
			Country:    dto.Address.Country,
		},
		totals,
		dto.CreatedAt,
		items,
		order.Status(dto.Status),
		dto.TrackingNumber,
		dto.TrackingURL,
		dto.Notes,
	)
}

func totalsFromDTO(dto OrderDTO) (order.Totals, error) {
	var totals order.Totals
	var err error

	if totals.Subtotal, err = kernel.NewMoneyFromCents(dto.SubtotalCents); err != nil {
		return order.Totals{}, err
	}
	if totals.Shipping, err = kernel.NewMoneyFromCents(dto.ShippingCents); err != nil {
		return order.Totals{}, err
	}
	if totals.Tax, err = kernel.NewMoneyFromCents(dto.TaxCents); err != nil {
		return order.Totals{}, err
	}
	if totals.Discount, err = kernel.NewMoneyFromCents(dto.DiscountCents); err != nil {
		return order.Totals{}, err
	}
	if totals.Total, err = kernel.NewMoneyFromCents(dto.TotalCents); err != nil {
		return order.Totals{}, err
	}

	return totals, nil
}

func itemFromDTO(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	var variantID *kernel.UUID
	if dto.VariantID != nil {
		vID, variantErr := kernel.UUIDFromBytes((*dto.VariantID)[:])
		if variantErr != nil {
			return order.Item{}, variantErr
		}
		variantID = &vID
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(
		productID,
		variantID,
		dto.ProductTitle,
		dto.VariantTitle,
		dto.Quantity,
		unitPrice,
		dto.UnitWeightOunces,
	)
}
