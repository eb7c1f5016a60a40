package tracking

import "strings"

// Header alias lists for the logical fields of a tracking upload.
// Order matters: the first alias present in the header wins, so the
// canonical spelling leads each list.
func orderNumberAliases() []string {
	return []string{"order number", "order id", "order #", "order no", "order"}
}

func trackingNumberAliases() []string {
	return []string{"tracking number", "tracking", "tracking #", "tracking no", "tracking code"}
}

func trackingURLAliases() []string {
	return []string{"tracking url", "tracking link", "url"}
}

func carrierAliases() []string {
	return []string{"carrier", "shipping carrier", "carrier name"}
}

// ResolveColumn maps a loosely-named header row to a logical field.
// It returns the index of the first header cell matching any alias,
// walking the alias list in order so earlier aliases take precedence
// when several headers could match conceptually. Matching compares the
// full trimmed cell, case-insensitively.
//
// Returns -1 when no header cell matches any alias.
func ResolveColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, cell := range header {
			if strings.EqualFold(strings.TrimSpace(cell), alias) {
				return i
			}
		}
	}
	return -1
}
