package tracking

import "strings"

// FormatError reports malformed or incomplete tracking uploads. The
// message is user-correctable and surfaced verbatim to the operator.
type FormatError struct {
	Reason string
}

// NewFormatError creates a FormatError with the given operator-facing reason.
func NewFormatError(reason string) *FormatError {
	return &FormatError{Reason: reason}
}

func (e *FormatError) Error() string {
	return e.Reason
}

// Parse turns raw delimited text into tracking records.
//
// The first non-blank line is the header row; it must resolve an
// order-number and a tracking-number column (common alias spellings are
// accepted, case-insensitively). Tracking-URL and carrier columns are
// optional.
//
// Data rows that are too short to reach the required columns, or whose
// order number or tracking number is empty after trimming, are silently
// skipped; partial files are expected from storefront exports. Rows are
// returned in original order.
//
// Parse fails with a *FormatError when:
//   - fewer than two non-blank lines exist ("empty")
//   - the order-number column cannot be resolved ("missing order number column")
//   - the tracking-number column cannot be resolved ("missing tracking number column")
//   - every data row was skipped ("no valid rows")
func Parse(text string) ([]TrackingRecord, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return nil, NewFormatError("empty")
	}

	header := splitLine(lines[0])

	orderCol := ResolveColumn(header, orderNumberAliases())
	if orderCol < 0 {
		return nil, NewFormatError("missing order number column")
	}

	trackingCol := ResolveColumn(header, trackingNumberAliases())
	if trackingCol < 0 {
		return nil, NewFormatError("missing tracking number column")
	}

	urlCol := ResolveColumn(header, trackingURLAliases())
	carrierCol := ResolveColumn(header, carrierAliases())

	minTokens := orderCol
	if trackingCol > minTokens {
		minTokens = trackingCol
	}
	minTokens++

	records := make([]TrackingRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		tokens := splitLine(line)
		if len(tokens) < minTokens {
			continue
		}

		record := TrackingRecord{
			OrderNumber:    tokens[orderCol],
			TrackingNumber: tokens[trackingCol],
		}
		if record.OrderNumber == "" || record.TrackingNumber == "" {
			continue
		}

		if urlCol >= 0 && urlCol < len(tokens) {
			record.TrackingURL = tokens[urlCol]
		}
		if carrierCol >= 0 && carrierCol < len(tokens) {
			record.Carrier = tokens[carrierCol]
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, NewFormatError("no valid rows")
	}

	return records, nil
}

// splitLine tokenizes one line respecting double-quote enclosure: a quote
// toggles quoted mode, a doubled quote inside a quoted field is an
// escaped literal quote, and commas inside quotes do not separate.
// Tokens are trimmed of surrounding whitespace after unquoting.
func splitLine(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	tokens = append(tokens, strings.TrimSpace(current.String()))
	return tokens
}
