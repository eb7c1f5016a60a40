package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrExportOrdersQueryIsNotConstructed = errors.New(
		"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
	)
	ErrNoOrdersSelected      = errors.New("at least one order must be selected for export")
	ErrExportFormatIsInvalid = errors.New("export format must be carrier-label-format or detailed")
)

// ExportOrdersQuery renders a selected set of orders as a downloadable
// CSV artifact. Export is all-or-nothing: one bad order id fails the
// whole request and no partial file is produced.
type ExportOrdersQuery struct {
	orderIDs []kernel.UUID
	format   ports.ExportFormat

	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates an export query for the selected orders.
func NewExportOrdersQuery(orderIDs []kernel.UUID, format ports.ExportFormat) (ExportOrdersQuery, error) {
	q := ExportOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderIDs(orderIDs),
		q.setFormat(format),
	); err != nil {
		return ExportOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// OrderIDs returns the selected order identifiers.
func (q ExportOrdersQuery) OrderIDs() []kernel.UUID {
	return q.orderIDs
}

// Format returns the requested export layout.
func (q ExportOrdersQuery) Format() ports.ExportFormat {
	return q.format
}

func (q *ExportOrdersQuery) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrNoOrdersSelected
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	q.orderIDs = orderIDs
	return nil
}

func (q *ExportOrdersQuery) setFormat(format ports.ExportFormat) error {
	if !format.Validate() {
		return ErrExportFormatIsInvalid
	}
	q.format = format
	return nil
}
