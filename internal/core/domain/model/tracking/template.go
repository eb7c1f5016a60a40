package tracking

import (
	"bytes"
	"encoding/csv"
)

// TemplateColumns is the fixed column set of the import template.
// The parser accepts looser alias spellings; the template always emits
// the canonical ones.
func TemplateColumns() []string {
	return []string{"Order Number", "Tracking Number", "Tracking URL", "Carrier"}
}

// TemplateCSV renders the import template as CSV bytes for operator
// download: the canonical header row plus one illustrative data row.
func TemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(TemplateColumns())
	_ = w.Write([]string{"1001", "9400110200881234567890", "", "usps"})
	w.Flush()

	return buf.Bytes()
}
