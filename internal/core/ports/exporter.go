package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ExportFormat selects the layout of an order export artifact.
type ExportFormat string

const (
	// ExportFormatCarrierLabel emits the four-column tracking template
	// layout, ready to be filled in and re-imported.
	ExportFormatCarrierLabel ExportFormat = "carrier-label-format"

	// ExportFormatDetailed emits one row per order line with customer,
	// address, and monetary detail.
	ExportFormatDetailed ExportFormat = "detailed"
)

// Validate checks the format selector against the known layouts.
func (f ExportFormat) Validate() bool {
	return f == ExportFormatCarrierLabel || f == ExportFormatDetailed
}

// Exporter produces a downloadable artifact for a set of orders.
// Unlike per-order status updates, export is all-or-nothing: any failure
// means no artifact, never a partial file.
type Exporter interface {
	// Export renders the selected orders as delimited text.
	Export(ctx context.Context, orderIDs []kernel.UUID, format ExportFormat) ([]byte, error)
}
