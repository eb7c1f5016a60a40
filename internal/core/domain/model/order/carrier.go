package order

import (
	"fmt"
	"strings"
)

// carrierTrackingTemplates maps a lowercase carrier label to the URL
// template used to synthesize a public tracking link. Keeping this as a
// static lookup table makes new carriers a one-line change.
func carrierTrackingTemplates() map[string]string {
	return map[string]string{
		"usps":  "https://tools.usps.com/go/TrackConfirmAction?tLabels=%s",
		"ups":   "https://www.ups.com/track?tracknum=%s",
		"fedex": "https://www.fedex.com/fedextrack/?trknbr=%s",
		"dhl":   "https://www.dhl.com/en/express/tracking.html?AWB=%s",
	}
}

// TrackingURLForCarrier synthesizes a tracking URL for the given carrier
// label and tracking number. Carrier matching is case-insensitive.
// Unknown carriers yield an empty string rather than an error: a missing
// link is preferable to a failed shipment update.
func TrackingURLForCarrier(carrier, trackingNumber string) string {
	template, ok := carrierTrackingTemplates()[strings.ToLower(strings.TrimSpace(carrier))]
	if !ok {
		return ""
	}
	return fmt.Sprintf(template, trackingNumber)
}
