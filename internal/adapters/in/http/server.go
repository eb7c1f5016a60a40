package http

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	batchUpdateStatusHandler commands.BatchUpdateStatusCommandHandler
	importTrackingHandler    commands.ImportTrackingCommandHandler

	// Query handlers
	listOrdersHandler   queries.ListOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler
	exportOrdersHandler queries.ExportOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	batchUpdateStatusHandler commands.BatchUpdateStatusCommandHandler,
	importTrackingHandler commands.ImportTrackingCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	exportOrdersHandler queries.ExportOrdersQueryHandler,
) *Server {
	return &Server{
		updateOrderStatusHandler: updateOrderStatusHandler,
		batchUpdateStatusHandler: batchUpdateStatusHandler,
		importTrackingHandler:    importTrackingHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		exportOrdersHandler:      exportOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/status", s.BatchUpdateStatus)
	api.POST("/orders/export", s.ExportOrders)
	api.POST("/tracking/import", s.ImportTracking)
	api.GET("/tracking/template", s.TrackingTemplate)
}

// Health handles GET /health for liveness probes.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListOrders handles GET /api/v1/orders with filter query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	criteria, err := criteriaFromQuery(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewListOrdersQuery(criteria)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	summaries, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := make([]OrderSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, toSummaryDTO(summary))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDetailDTO(detail))
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, target, req.TrackingNumber, req.TrackingURL, req.Carrier)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BatchUpdateStatus handles POST /api/v1/orders/status.
// Always answers 200 with per-order accounting when the batch itself is
// well-formed, even if every order failed.
func (s *Server) BatchUpdateStatus(ctx echo.Context) error {
	var req BatchStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	ids, err := parseUUIDs(req.OrderIDs)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewBatchUpdateStatusCommand(ids, target)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	result, err := s.batchUpdateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBatchResultDTO(result))
}

// ImportTracking handles POST /api/v1/tracking/import.
// Accepts the CSV either as a multipart "file" part or as the raw body.
func (s *Server) ImportTracking(ctx echo.Context) error {
	content, err := readCSVUpload(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewImportTrackingCommand(content)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	result, err := s.importTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBatchResultDTO(result))
}

// TrackingTemplate handles GET /api/v1/tracking/template.
// Serves the canonical upload template as a CSV download.
func (s *Server) TrackingTemplate(ctx echo.Context) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="tracking-template.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", tracking.TemplateCSV())
}

// ExportOrders handles POST /api/v1/orders/export.
func (s *Server) ExportOrders(ctx echo.Context) error {
	var req ExportRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	ids, err := parseUUIDs(req.OrderIDs)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewExportOrdersQuery(ids, ports.ExportFormat(req.Format))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	artifact, err := s.exportOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	filename := `attachment; filename="orders-` + time.Now().UTC().Format("20060102-150405") + `.csv"`
	ctx.Response().Header().Set(echo.HeaderContentDisposition, filename)
	return ctx.Blob(http.StatusOK, "text/csv", artifact)
}

// criteriaFromQuery builds filter criteria from the list endpoint's query
// parameters.
func criteriaFromQuery(ctx echo.Context) (services.FilterCriteria, error) {
	criteria := services.FilterCriteria{
		Search:           strings.TrimSpace(ctx.QueryParam("search")),
		HasNotes:         ctx.QueryParam("has_notes") == "true",
		LowInventoryOnly: ctx.QueryParam("low_inventory") == "true",
	}

	if raw := ctx.QueryParam("date_from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return services.FilterCriteria{}, errors.New("date_from must be YYYY-MM-DD")
		}
		criteria.DateFrom = &parsed
	}
	if raw := ctx.QueryParam("date_to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return services.FilterCriteria{}, errors.New("date_to must be YYYY-MM-DD")
		}
		criteria.DateTo = &parsed
	}

	for _, raw := range splitMulti(ctx.QueryParams()["status"]) {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return services.FilterCriteria{}, err
		}
		criteria.Statuses = append(criteria.Statuses, status)
	}

	for _, raw := range splitMulti(ctx.QueryParams()["product_id"]) {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return services.FilterCriteria{}, err
		}
		criteria.ProductIDs = append(criteria.ProductIDs, id)
	}

	var err error
	if criteria.MinTotal, err = parseMoneyParam(ctx.QueryParam("min_total"), "min_total"); err != nil {
		return services.FilterCriteria{}, err
	}
	if criteria.MaxTotal, err = parseMoneyParam(ctx.QueryParam("max_total"), "max_total"); err != nil {
		return services.FilterCriteria{}, err
	}

	return criteria, nil
}

// splitMulti accepts both repeated parameters and comma-separated values.
func splitMulti(values []string) []string {
	var result []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

func parseMoneyParam(raw, name string) (*kernel.Money, error) {
	if raw == "" {
		return nil, nil
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return nil, errors.New(name + " must be a non-negative decimal amount")
	}

	money, err := kernel.NewMoneyFromCents(int64(math.Round(amount * 100)))
	if err != nil {
		return nil, err
	}
	return &money, nil
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// readCSVUpload extracts the uploaded CSV from a multipart "file" part,
// falling back to the raw request body.
func readCSVUpload(ctx echo.Context) (string, error) {
	if file, err := ctx.FormFile("file"); err == nil {
		src, openErr := file.Open()
		if openErr != nil {
			return "", openErr
		}
		defer src.Close()

		content, readErr := io.ReadAll(src)
		if readErr != nil {
			return "", readErr
		}
		return string(content), nil
	}

	content, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// mapDomainError converts core errors into HTTP status codes:
// unknown objects map to 404, illegal transitions to 409, malformed
// uploads and validation failures to 400, everything else to 500.
func mapDomainError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return errorResponse(ctx, http.StatusNotFound, err)
	}

	var stateErr *order.StateError
	if errors.As(err, &stateErr) {
		return errorResponse(ctx, http.StatusConflict, err)
	}

	var formatErr *tracking.FormatError
	if errors.As(err, &formatErr) {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
		return errorResponse(ctx, http.StatusBadRequest, err)
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
		Code:    http.StatusInternalServerError,
		Message: "internal error",
	})
}

func errorResponse(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorDTO{Code: code, Message: err.Error()})
}
