package tracking_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should parse a plain upload in row order", func(t *testing.T) {
		text := "Order Number,Tracking Number,Tracking URL,Carrier\n" +
			"1001,9400110200881234567890,,usps\n" +
			"1002,1Z999AA10123456784,https://example.com/t/2,ups\n"

		records, err := tracking.Parse(text)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, tracking.TrackingRecord{
			OrderNumber:    "1001",
			TrackingNumber: "9400110200881234567890",
			Carrier:        "usps",
		}, records[0])
		assert.Equal(t, "1002", records[1].OrderNumber)
		assert.Equal(t, "https://example.com/t/2", records[1].TrackingURL)
	})

	t.Run("should accept header aliases case-insensitively", func(t *testing.T) {
		text := "ORDER ID,TRACKING\nA-17,XYZ123\n"

		records, err := tracking.Parse(text)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "A-17", records[0].OrderNumber)
		assert.Equal(t, "XYZ123", records[0].TrackingNumber)
	})

	t.Run("should respect quoting with embedded commas and escaped quotes", func(t *testing.T) {
		text := "Order Number,Tracking Number,Tracking URL,Carrier\n" +
			`"Smith, Jr.",1Z999,,UPS` + "\n" +
			`"say ""hi""",TRACK2,,fedex` + "\n"

		records, err := tracking.Parse(text)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Smith, Jr.", records[0].OrderNumber)
		assert.Equal(t, "1Z999", records[0].TrackingNumber)
		assert.Equal(t, `say "hi"`, records[1].OrderNumber)
	})

	t.Run("should trim whitespace around tokens after unquoting", func(t *testing.T) {
		text := "Order Number , Tracking Number\n  1001 ,  TRACK-1  \n"

		records, err := tracking.Parse(text)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "1001", records[0].OrderNumber)
		assert.Equal(t, "TRACK-1", records[0].TrackingNumber)
	})

	t.Run("should discard blank lines anywhere in the input", func(t *testing.T) {
		text := "\n\nOrder Number,Tracking Number\n\n1001,TRACK-1\n\n\n1002,TRACK-2\n"

		records, err := tracking.Parse(text)

		require.NoError(t, err)
		require.Len(t, records, 2)
	})

	t.Run("should silently skip short rows and rows missing required values", func(t *testing.T) {
		text := "Order Number,Tracking Number\n" +
			"1001,TRACK-1\n" +
			"short-row\n" +
			",TRACK-2\n" +
			"1003,\n" +
			"1004,TRACK-4\n"

		records, err := tracking.Parse(text)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "1001", records[0].OrderNumber)
		assert.Equal(t, "1004", records[1].OrderNumber)
	})

	t.Run("should fail with empty when fewer than two non-blank lines exist", func(t *testing.T) {
		for _, text := range []string{"", "\n\n", "Order Number,Tracking Number\n"} {
			_, err := tracking.Parse(text)

			var formatErr *tracking.FormatError
			require.ErrorAs(t, err, &formatErr, "input %q", text)
			assert.Equal(t, "empty", formatErr.Error())
		}
	})

	t.Run("should fail when the order number column is missing", func(t *testing.T) {
		_, err := tracking.Parse("Tracking Number,Carrier\nTRACK-1,usps\n")

		var formatErr *tracking.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "missing order number column", formatErr.Error())
	})

	t.Run("should fail when the tracking number column is missing", func(t *testing.T) {
		_, err := tracking.Parse("Order Number,Carrier\n1001,usps\n")

		var formatErr *tracking.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "missing tracking number column", formatErr.Error())
	})

	t.Run("should fail before examining data rows when both required columns are missing", func(t *testing.T) {
		_, err := tracking.Parse("Carrier,Notes\nusps,whatever\n")

		var formatErr *tracking.FormatError
		require.ErrorAs(t, err, &formatErr)
	})

	t.Run("should fail with no valid rows when every row is skipped", func(t *testing.T) {
		_, err := tracking.Parse("Order Number,Tracking Number\n,\n1001,\n")

		var formatErr *tracking.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "no valid rows", formatErr.Error())
	})

	t.Run("should be deterministic for identical input", func(t *testing.T) {
		text := "Order Number,Tracking Number\n1001,TRACK-1\n1002,TRACK-2\n"

		first, err := tracking.Parse(text)
		require.NoError(t, err)
		second, err := tracking.Parse(text)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should handle windows line endings", func(t *testing.T) {
		text := "Order Number,Tracking Number\r\n1001,TRACK-1\r\n"

		records, err := tracking.Parse(text)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "TRACK-1", records[0].TrackingNumber)
	})
}

func TestResolveColumn(t *testing.T) {
	t.Run("should match the full trimmed cell case-insensitively", func(t *testing.T) {
		header := []string{" Carrier ", "ORDER NUMBER", "Tracking Number"}

		idx := tracking.ResolveColumn(header, []string{"order number"})

		assert.Equal(t, 1, idx)
	})

	t.Run("should prefer earlier aliases over earlier columns", func(t *testing.T) {
		header := []string{"Order ID", "Order Number"}

		idx := tracking.ResolveColumn(header, []string{"order number", "order id"})

		assert.Equal(t, 1, idx)
	})

	t.Run("should return -1 when nothing matches", func(t *testing.T) {
		idx := tracking.ResolveColumn([]string{"Foo", "Bar"}, []string{"order number"})

		assert.Equal(t, -1, idx)
	})

	t.Run("should not match partial cells", func(t *testing.T) {
		idx := tracking.ResolveColumn([]string{"Order Number (external)"}, []string{"order number"})

		assert.Equal(t, -1, idx)
	})
}

func TestTemplateCSV(t *testing.T) {
	t.Run("should emit the fixed four-column template", func(t *testing.T) {
		data := string(tracking.TemplateCSV())

		lines := strings.Split(strings.TrimSpace(data), "\n")
		require.GreaterOrEqual(t, len(lines), 1)
		assert.Equal(t, "Order Number,Tracking Number,Tracking URL,Carrier", strings.TrimRight(lines[0], "\r"))
	})

	t.Run("template round-trips through the parser", func(t *testing.T) {
		records, err := tracking.Parse(string(tracking.TemplateCSV()))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "1001", records[0].OrderNumber)
		assert.Equal(t, "usps", records[0].Carrier)
	})
}
