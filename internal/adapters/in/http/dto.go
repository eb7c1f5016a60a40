// Package http exposes the fulfillment operations over a REST API.
// Request and response shapes are hand-written DTOs; mapping to domain
// types happens at the edge so core packages never see transport types.
package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
)

// ErrorDTO is the uniform error payload.
type ErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WeightDTO carries the derived package weight of an order.
type WeightDTO struct {
	TotalOunces       float64 `json:"total_ounces"`
	Source            string  `json:"source"`
	HasUnknownWeights bool    `json:"has_unknown_weights"`
}

// InventoryRollupDTO carries order-level stock risk counts.
type InventoryRollupDTO struct {
	Critical int `json:"critical"`
	Low      int `json:"low"`
	OK       int `json:"ok"`
}

// InventoryAlertDTO carries the stock risk classification of one line.
type InventoryAlertDTO struct {
	ProductID    string  `json:"product_id"`
	VariantID    *string `json:"variant_id,omitempty"`
	ProductTitle string  `json:"product_title"`
	VariantTitle string  `json:"variant_title,omitempty"`
	Stock        int     `json:"stock"`
	Ordered      int     `json:"ordered"`
	Tier         string  `json:"tier"`
}

// AddressDTO carries the shipping destination.
type AddressDTO struct {
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// TotalsDTO carries order amounts as decimal strings.
type TotalsDTO struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

// OrderItemDTO carries one order line.
type OrderItemDTO struct {
	ProductID        string   `json:"product_id"`
	VariantID        *string  `json:"variant_id,omitempty"`
	ProductTitle     string   `json:"product_title"`
	VariantTitle     string   `json:"variant_title,omitempty"`
	Quantity         int      `json:"quantity"`
	UnitPrice        string   `json:"unit_price"`
	UnitWeightOunces *float64 `json:"unit_weight_ounces,omitempty"`
}

// OrderSummaryDTO is one row of the order list.
type OrderSummaryDTO struct {
	ID             string             `json:"id"`
	Number         string             `json:"number"`
	Status         string             `json:"status"`
	CustomerName   string             `json:"customer_name"`
	CustomerEmail  string             `json:"customer_email"`
	Total          string             `json:"total"`
	CreatedAt      time.Time          `json:"created_at"`
	TrackingNumber *string            `json:"tracking_number,omitempty"`
	TrackingURL    *string            `json:"tracking_url,omitempty"`
	HasNotes       bool               `json:"has_notes"`
	ItemCount      int                `json:"item_count"`
	Weight         WeightDTO          `json:"weight"`
	Inventory      InventoryRollupDTO `json:"inventory"`
}

// OrderDetailDTO is the full single-order view.
type OrderDetailDTO struct {
	ID             string              `json:"id"`
	Number         string              `json:"number"`
	Status         string              `json:"status"`
	CustomerName   string              `json:"customer_name"`
	CustomerEmail  string              `json:"customer_email"`
	Address        AddressDTO          `json:"shipping_address"`
	Totals         TotalsDTO           `json:"totals"`
	TrackingNumber *string             `json:"tracking_number,omitempty"`
	TrackingURL    *string             `json:"tracking_url,omitempty"`
	Notes          *string             `json:"notes,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	Items          []OrderItemDTO      `json:"items"`
	Weight         WeightDTO           `json:"weight"`
	Alerts         []InventoryAlertDTO `json:"inventory_alerts"`
	Inventory      InventoryRollupDTO  `json:"inventory"`
}

// UpdateStatusRequest asks for a single-order status transition.
// Tracking fields matter only when the target status is "shipped".
type UpdateStatusRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	TrackingURL    string `json:"tracking_url,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
}

// BatchStatusRequest asks for one transition across many orders.
type BatchStatusRequest struct {
	OrderIDs []string `json:"order_ids"`
	Status   string   `json:"status"`
}

// BatchResultDTO reports per-item accounting of a batch operation.
type BatchResultDTO struct {
	Requested int      `json:"requested"`
	Succeeded int      `json:"succeeded"`
	Errors    []string `json:"errors,omitempty"`
}

// ExportRequest selects orders and a layout for CSV export.
type ExportRequest struct {
	OrderIDs []string `json:"order_ids"`
	Format   string   `json:"format"`
}

func toWeightDTO(w services.WeightEstimate) WeightDTO {
	return WeightDTO{
		TotalOunces:       w.TotalOunces,
		Source:            w.Source,
		HasUnknownWeights: w.HasUnknownWeights,
	}
}

func toRollupDTO(r services.InventoryRollup) InventoryRollupDTO {
	return InventoryRollupDTO{Critical: r.Critical, Low: r.Low, OK: r.OK}
}

func toSummaryDTO(s queries.OrderSummary) OrderSummaryDTO {
	return OrderSummaryDTO{
		ID:             s.ID.String(),
		Number:         s.Number,
		Status:         s.Status.String(),
		CustomerName:   s.CustomerName,
		CustomerEmail:  s.CustomerEmail,
		Total:          s.Total.String(),
		CreatedAt:      s.CreatedAt,
		TrackingNumber: s.TrackingNumber,
		TrackingURL:    s.TrackingURL,
		HasNotes:       s.HasNotes,
		ItemCount:      s.ItemCount,
		Weight:         toWeightDTO(s.Weight),
		Inventory:      toRollupDTO(s.Inventory),
	}
}

func toDetailDTO(d queries.GetOrderQueryResponse) OrderDetailDTO {
	items := make([]OrderItemDTO, 0, len(d.Items))
	for _, item := range d.Items {
		var variantID *string
		if id := item.VariantID(); id != nil {
			s := id.String()
			variantID = &s
		}
		items = append(items, OrderItemDTO{
			ProductID:        item.ProductID().String(),
			VariantID:        variantID,
			ProductTitle:     item.ProductTitle(),
			VariantTitle:     item.VariantTitle(),
			Quantity:         item.Quantity(),
			UnitPrice:        item.UnitPrice().String(),
			UnitWeightOunces: item.UnitWeightOunces(),
		})
	}

	alerts := make([]InventoryAlertDTO, 0, len(d.Alerts))
	for _, alert := range d.Alerts {
		var variantID *string
		if alert.VariantID != nil {
			s := alert.VariantID.String()
			variantID = &s
		}
		alerts = append(alerts, InventoryAlertDTO{
			ProductID:    alert.ProductID.String(),
			VariantID:    variantID,
			ProductTitle: alert.ProductTitle,
			VariantTitle: alert.VariantTitle,
			Stock:        alert.Stock,
			Ordered:      alert.Ordered,
			Tier:         alert.Tier.String(),
		})
	}

	return OrderDetailDTO{
		ID:            d.ID.String(),
		Number:        d.Number,
		Status:        d.Status.String(),
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		Address: AddressDTO{
			Street1:    d.ShippingAddress.Street1,
			Street2:    d.ShippingAddress.Street2,
			City:       d.ShippingAddress.City,
			State:      d.ShippingAddress.State,
			PostalCode: d.ShippingAddress.PostalCode,
			Country:    d.ShippingAddress.Country,
		},
		Totals: TotalsDTO{
			Subtotal: d.Totals.Subtotal.String(),
			Shipping: d.Totals.Shipping.String(),
			Tax:      d.Totals.Tax.String(),
			Discount: d.Totals.Discount.String(),
			Total:    d.Totals.Total.String(),
		},
		TrackingNumber: d.TrackingNumber,
		TrackingURL:    d.TrackingURL,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		Items:          items,
		Weight:         toWeightDTO(d.Weight),
		Alerts:         alerts,
		Inventory:      toRollupDTO(d.Inventory),
	}
}

func toBatchResultDTO(r commands.BatchResult) BatchResultDTO {
	return BatchResultDTO{
		Requested: r.Requested,
		Succeeded: r.Succeeded,
		Errors:    r.Errors,
	}
}
