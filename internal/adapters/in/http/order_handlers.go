package http

import (
	"net/http"
	"strconv"
	"time"

	"ayoya/internal/core/application/usecases/commands"
	"ayoya/internal/core/application/usecases/queries"
	"ayoya/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the order form submission.
type CreateOrderRequest struct {
	CustomerName   string `json:"customerName"`
	Phone          string `json:"phone"`
	DeliveryPhone  string `json:"deliveryPhone"`
	Street         string `json:"street"`
	City           string `json:"city"`
	Zone           string `json:"zone"`
	OrderType      string `json:"orderType"`
	Quantity       int    `json:"quantity"`
	PaymentMethod  string `json:"paymentMethod"`
	DeliveryMethod string `json:"deliveryMethod"`
	Notes          string `json:"notes"`
}

// CreateOrderResponse carries what the confirmation page needs.
type CreateOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
	TotalAmount int    `json:"totalAmount"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName, req.Phone, req.DeliveryPhone,
		req.Street, req.City, req.Zone,
		req.OrderType, req.Quantity,
		req.PaymentMethod, req.DeliveryMethod,
		req.Notes,
	)
	if err != nil {
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:          result.OrderID.String(),
		OrderNumber: result.OrderNumber,
		TotalAmount: result.TotalAmount,
	})
}

// GetOrder handles GET /api/orders/:id and GET /api/logistics/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, item)
}

// ListOrders handles GET /api/logistics/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	filter := queries.OrderFilter{
		Status: ctx.QueryParam("status"),
		City:   ctx.QueryParam("city"),
		Search: ctx.QueryParam("search"),
	}

	var parseErr error
	if filter.CreatedFrom, parseErr = parseTimeParam(ctx.QueryParam("createdFrom")); parseErr != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid createdFrom")
	}
	if filter.CreatedTo, parseErr = parseTimeParam(ctx.QueryParam("createdTo")); parseErr != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid createdTo")
	}

	page, err := parseIntParam(ctx.QueryParam("page"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseIntParam(ctx.QueryParam("pageSize"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid pageSize")
	}

	query, err := queries.NewListOrdersQuery(filter, page, pageSize)
	if err != nil {
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ChangeOrderStatusRequest names the requested target status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PATCH /api/logistics/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status)
	if err != nil {
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, id)
}

// AssignCourierRequest names the delivery person to hand the order to.
type AssignCourierRequest struct {
	DeliveryID string `json:"deliveryId"`
}

// AssignCourier handles POST /api/logistics/orders/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.DeliveryID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid delivery id")
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// GetOrderStats handles GET /api/logistics/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	query := queries.NewGetOrderStatsQuery(nil, nil)

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// respondWithOrder returns the refreshed read model after a mutation, so the
// dashboard can render the new state without a second round trip.
func (s *Server) respondWithOrder(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, item)
}

// parseTimeParam accepts RFC3339 timestamps or plain dates.
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseIntParam(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
