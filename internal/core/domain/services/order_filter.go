package services

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// FilterCriteria aggregates the predicates an operator can apply to an
// order collection. It is a pure predicate input with no identity; the
// zero value matches every order.
//
// Multi-valued categories (Statuses, ProductIDs) are OR within the
// category and empty means no restriction. All supplied categories
// combine with logical AND.
type FilterCriteria struct {
	// Search is a case-insensitive substring matched against order
	// number, customer name, and customer email.
	Search string

	// DateFrom/DateTo bound the order creation timestamp. DateTo is
	// inclusive of its entire day.
	DateFrom *time.Time
	DateTo   *time.Time

	// Statuses restricts to orders whose status is in the set.
	Statuses []order.Status

	// ProductIDs restricts to orders whose items intersect the set.
	ProductIDs []kernel.UUID

	// MinTotal/MaxTotal bound the order total; either side is optional.
	MinTotal *kernel.Money
	MaxTotal *kernel.Money

	// HasNotes restricts to orders carrying internal notes.
	HasNotes bool

	// LowInventoryOnly restricts to orders whose inventory rollup is not
	// all-ok.
	LowInventoryOnly bool
}

// IsZero reports whether no predicate is supplied.
func (c FilterCriteria) IsZero() bool {
	return c.Search == "" &&
		c.DateFrom == nil && c.DateTo == nil &&
		len(c.Statuses) == 0 && len(c.ProductIDs) == 0 &&
		c.MinTotal == nil && c.MaxTotal == nil &&
		!c.HasNotes && !c.LowInventoryOnly
}

// LowInventoryFunc reports whether an order's inventory rollup has
// issues. The filter engine takes it as an input so it stays decoupled
// from the stock lookup; callers compose it from InventoryClassifier.
type LowInventoryFunc func(*order.Order) bool

// OrderFilter evaluates FilterCriteria against an order collection.
// Filtering preserves the input order and never reorders; sorting is a
// separate concern outside this engine. Given identical inputs the
// output membership and order are stable.
type OrderFilter struct{}

// NewOrderFilter creates a new OrderFilter instance.
func NewOrderFilter() OrderFilter {
	return OrderFilter{}
}

// Apply returns the subset of orders where every supplied predicate
// evaluates true. lowInventory is only consulted when
// criteria.LowInventoryOnly is set; passing nil disables that predicate.
func (f OrderFilter) Apply(
	orders []*order.Order,
	criteria FilterCriteria,
	lowInventory LowInventoryFunc,
) []*order.Order {
	result := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if f.matches(o, criteria, lowInventory) {
			result = append(result, o)
		}
	}
	return result
}

func (f OrderFilter) matches(o *order.Order, criteria FilterCriteria, lowInventory LowInventoryFunc) bool {
	if !matchesSearch(o, criteria.Search) {
		return false
	}
	if !matchesDateRange(o, criteria.DateFrom, criteria.DateTo) {
		return false
	}
	if !matchesStatuses(o, criteria.Statuses) {
		return false
	}
	if !matchesProducts(o, criteria.ProductIDs) {
		return false
	}
	if !matchesTotalRange(o, criteria.MinTotal, criteria.MaxTotal) {
		return false
	}
	if criteria.HasNotes && !o.HasNotes() {
		return false
	}
	if criteria.LowInventoryOnly && lowInventory != nil && !lowInventory(o) {
		return false
	}
	return true
}

func matchesSearch(o *order.Order, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}

	for _, field := range []string{o.Number(), o.CustomerName(), o.CustomerEmail()} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func matchesDateRange(o *order.Order, from, to *time.Time) bool {
	createdAt := o.CreatedAt()
	if from != nil && createdAt.Before(*from) {
		return false
	}
	if to != nil {
		endOfDay := time.Date(
			to.Year(), to.Month(), to.Day(),
			23, 59, 59, int(999*time.Millisecond),
			to.Location(),
		)
		if createdAt.After(endOfDay) {
			return false
		}
	}
	return true
}

func matchesStatuses(o *order.Order, statuses []order.Status) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if o.Status() == s {
			return true
		}
	}
	return false
}

func matchesProducts(o *order.Order, productIDs []kernel.UUID) bool {
	if len(productIDs) == 0 {
		return true
	}
	for _, item := range o.Items() {
		for _, id := range productIDs {
			if item.ProductID().IsEqual(id) {
				return true
			}
		}
	}
	return false
}

func matchesTotalRange(o *order.Order, minTotal, maxTotal *kernel.Money) bool {
	total := o.Totals().Total
	if minTotal != nil && total.LessThan(*minTotal) {
		return false
	}
	if maxTotal != nil && total.GreaterThan(*maxTotal) {
		return false
	}
	return true
}
