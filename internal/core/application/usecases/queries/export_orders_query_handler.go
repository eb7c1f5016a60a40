package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

// ExportOrdersQueryHandler produces the export artifact for a selection
// of orders by delegating rendering to the configured exporter.
type ExportOrdersQueryHandler struct {
	exporter ports.Exporter
}

// NewExportOrdersQueryHandler creates a handler for order exports.
func NewExportOrdersQueryHandler(exporter ports.Exporter) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{exporter: exporter}
}

// Handle executes the export. Returns the rendered artifact bytes, or an
// error when any selected order cannot be exported.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.exporter.Export(ctx, query.OrderIDs(), query.Format())
}
