// Package export renders selected orders as downloadable CSV artifacts.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"
)

// CSVExporter implements the exporter port over the order repository.
// Export is all-or-nothing: every selected order is loaded before any
// output is rendered, so one unknown id means no artifact.
type CSVExporter struct {
	orderRepo ports.OrderRepository
}

// NewCSVExporter creates an exporter backed by the given order store.
func NewCSVExporter(orderRepo ports.OrderRepository) *CSVExporter {
	return &CSVExporter{orderRepo: orderRepo}
}

// Export renders the selected orders in the requested layout.
func (e *CSVExporter) Export(
	ctx context.Context,
	orderIDs []kernel.UUID,
	format ports.ExportFormat,
) ([]byte, error) {
	orders := make([]*order.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		o, err := e.orderRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	switch format {
	case ports.ExportFormatCarrierLabel:
		return renderCarrierLabel(orders)
	case ports.ExportFormatDetailed:
		return renderDetailed(orders)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// renderCarrierLabel emits the tracking template layout with one row per
// order, pre-filled with any tracking data already recorded. The file can
// be completed by the carrier and re-imported as-is.
func renderCarrierLabel(orders []*order.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(tracking.TemplateColumns()); err != nil {
		return nil, err
	}

	for _, o := range orders {
		row := []string{o.Number(), deref(o.TrackingNumber()), deref(o.TrackingURL()), ""}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderDetailed emits one row per order line with customer, address, and
// monetary detail.
func renderDetailed(orders []*order.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Order Number", "Status", "Customer Name", "Customer Email",
		"Street 1", "Street 2", "City", "State", "Postal Code", "Country",
		"Product Title", "Variant Title", "Quantity", "Unit Price",
		"Order Total", "Tracking Number", "Created At",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, o := range orders {
		address := o.ShippingAddress()
		for _, item := range o.Items() {
			row := []string{
				o.Number(),
				o.Status().String(),
				o.CustomerName(),
				o.CustomerEmail(),
				address.Street1,
				address.Street2,
				address.City,
				address.State,
				address.PostalCode,
				address.Country,
				item.ProductTitle(),
				item.VariantTitle(),
				strconv.Itoa(item.Quantity()),
				item.UnitPrice().String(),
				o.Totals().Total.String(),
				deref(o.TrackingNumber()),
				o.CreatedAt().Format("2006-01-02 15:04:05"),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
