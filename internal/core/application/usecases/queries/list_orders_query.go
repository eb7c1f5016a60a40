// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query responses are computed projections over order aggregates and are
// never persisted.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("date range start must not be after its end")
)

// ListOrdersQuery retrieves the operator's order list with optional
// filtering. The zero criteria returns every order.
//
// Example:
//
//	criteria := services.FilterCriteria{Search: "jane", Statuses: []order.Status{order.Paid}}
//	query, err := NewListOrdersQuery(criteria)
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	summaries, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	criteria services.FilterCriteria

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order-list query from filter criteria.
// Validates status values, product ids, monetary bounds, and the date
// range ordering.
func NewListOrdersQuery(criteria services.FilterCriteria) (ListOrdersQuery, error) {
	if err := validateCriteria(criteria); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		criteria: criteria,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Criteria returns the filter criteria the query carries.
func (q ListOrdersQuery) Criteria() services.FilterCriteria {
	return q.criteria
}

func validateCriteria(criteria services.FilterCriteria) error {
	var errs []error

	for _, s := range criteria.Statuses {
		errs = append(errs, s.Validate())
	}
	for _, id := range criteria.ProductIDs {
		errs = append(errs, id.Validate())
	}
	if criteria.MinTotal != nil {
		errs = append(errs, criteria.MinTotal.Validate())
	}
	if criteria.MaxTotal != nil {
		errs = append(errs, criteria.MaxTotal.Validate())
	}
	if criteria.DateFrom != nil && criteria.DateTo != nil && criteria.DateFrom.After(*criteria.DateTo) {
		errs = append(errs, ErrDateRangeIsInvalid)
	}

	return errors.Join(errs...)
}

// OrderSummary is the list-view projection of one order. Weight and
// Inventory are derived on read and reflect the stock snapshot taken
// while handling the query.
type OrderSummary struct {
	ID             kernel.UUID
	Number         string
	Status         order.Status
	CustomerName   string
	CustomerEmail  string
	Total          kernel.Money
	CreatedAt      time.Time
	TrackingNumber *string
	TrackingURL    *string
	HasNotes       bool
	ItemCount      int
	Weight         services.WeightEstimate
	Inventory      services.InventoryRollup
}
