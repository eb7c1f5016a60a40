package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrImportTrackingCommandIsNotConstructed = errors.New(
		"ImportTrackingCommand must be created via NewImportTrackingCommand constructor",
	)
	ErrCSVContentIsRequired = errors.New("csv content is required")
)

// ImportTrackingCommand represents a request to bulk-ship orders from an
// uploaded tracking CSV. The raw file content is carried as-is; parsing
// and per-row matching happen in the handler.
type ImportTrackingCommand struct { //nolint:recvcheck //using for validation
	csvContent string

	guard guard.ConstructorGuard
}

// NewImportTrackingCommand creates a tracking import command from the raw
// CSV file content.
func NewImportTrackingCommand(csvContent string) (ImportTrackingCommand, error) {
	cmd := ImportTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCSVContent(csvContent); err != nil {
		return ImportTrackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportTrackingCommand) Validate() error {
	return c.guard.Validate(ErrImportTrackingCommandIsNotConstructed)
}

// CSVContent returns the raw uploaded file content.
func (c ImportTrackingCommand) CSVContent() string {
	return c.csvContent
}

func (c *ImportTrackingCommand) setCSVContent(csvContent string) error {
	if csvContent == "" {
		return ErrCSVContentIsRequired
	}
	c.csvContent = csvContent
	return nil
}
