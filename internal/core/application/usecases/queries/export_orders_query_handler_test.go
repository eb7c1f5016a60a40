package queries_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportOrdersQueryHandler_Handle_DelegatesToExporter(t *testing.T) {
	ctx := t.Context()
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	artifact := []byte("Order Number,Tracking Number,Tracking URL,Carrier\n")

	exporter := new(MockExporter)
	exporter.On("Export", mock.Anything, ids, ports.ExportFormatCarrierLabel).
		Return(artifact, nil).Once()

	h := queries.NewExportOrdersQueryHandler(exporter)
	query, err := queries.NewExportOrdersQuery(ids, ports.ExportFormatCarrierLabel)
	require.NoError(t, err)

	result, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, artifact, result)
	exporter.AssertExpectations(t)
}

func TestExportOrdersQueryHandler_Handle_ExporterFailureYieldsNoArtifact(t *testing.T) {
	ctx := t.Context()
	ids := []kernel.UUID{kernel.NewUUID()}

	exporter := new(MockExporter)
	exporter.On("Export", mock.Anything, ids, ports.ExportFormatDetailed).
		Return(nil, errors.New("order not found")).Once()

	h := queries.NewExportOrdersQueryHandler(exporter)
	query, err := queries.NewExportOrdersQuery(ids, ports.ExportFormatDetailed)
	require.NoError(t, err)

	result, err := h.Handle(ctx, query)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestNewExportOrdersQuery_Validation(t *testing.T) {
	t.Run("should reject empty selection", func(t *testing.T) {
		_, err := queries.NewExportOrdersQuery(nil, ports.ExportFormatDetailed)
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrNoOrdersSelected)
	})

	t.Run("should reject unknown format", func(t *testing.T) {
		_, err := queries.NewExportOrdersQuery([]kernel.UUID{kernel.NewUUID()}, ports.ExportFormat("xml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrExportFormatIsInvalid)
	})

	t.Run("should reject zero order id", func(t *testing.T) {
		_, err := queries.NewExportOrdersQuery([]kernel.UUID{{}}, ports.ExportFormatDetailed)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
