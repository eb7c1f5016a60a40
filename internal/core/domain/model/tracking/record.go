// Package tracking implements ingestion of bulk carrier tracking data.
//
// The package includes:
//   - TrackingRecord: An ephemeral value carrying one parsed tracking row
//   - Parse: The delimited-text parser with double-quote enclosure rules
//   - ResolveColumn: Case-insensitive header resolution over alias lists
//   - TemplateCSV: The fixed import template emitted for operators
//
// Parsing is deterministic and side-effect-free: the same input always
// yields the same records, in original row order. Records are not
// persisted here; they are handed to the order-update collaborator.
package tracking

// TrackingRecord is one parsed row of a carrier tracking upload.
// OrderNumber and TrackingNumber are always non-empty; TrackingURL and
// Carrier are optional and empty when the upload did not carry them.
type TrackingRecord struct {
	OrderNumber    string
	TrackingNumber string
	TrackingURL    string
	Carrier        string
}
