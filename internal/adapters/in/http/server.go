// Package http exposes the storefront and logistics REST surface over echo.
// It coordinates between HTTP handlers and application use cases: request
// DTOs are parsed into commands and queries, and domain errors are mapped to
// status codes in one place.
package http

import (
	"net/http"

	"ayoya/internal/core/application/usecases/commands"
	"ayoya/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the REST surface.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	assignCourierHandler     commands.AssignCourierCommandHandler
	createCourierHandler     commands.CreateCourierCommandHandler
	updateCourierHandler     commands.UpdateCourierCommandHandler
	deleteCourierHandler     commands.DeleteCourierCommandHandler

	// Query handlers
	listOrdersHandler    queries.ListOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	listCouriersHandler  queries.ListCouriersQueryHandler
	getCourierHandler    queries.GetCourierQueryHandler
	getOrderStatsHandler queries.GetOrderStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	updateCourierHandler commands.UpdateCourierCommandHandler,
	deleteCourierHandler commands.DeleteCourierCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listCouriersHandler queries.ListCouriersQueryHandler,
	getCourierHandler queries.GetCourierQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		assignCourierHandler:     assignCourierHandler,
		createCourierHandler:     createCourierHandler,
		updateCourierHandler:     updateCourierHandler,
		deleteCourierHandler:     deleteCourierHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		listCouriersHandler:      listCouriersHandler,
		getCourierHandler:        getCourierHandler,
		getOrderStatsHandler:     getOrderStatsHandler,
	}
}

// RegisterRoutes wires the REST surface onto the echo instance. Everything
// under /api/logistics requires an operator bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/public/zones", s.GetZones)

	logistics := api.Group("/logistics", RequireOperator)
	logistics.GET("/orders", s.ListOrders)
	logistics.GET("/orders/:id", s.GetOrder)
	logistics.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	logistics.POST("/orders/:id/assign", s.AssignCourier)
	logistics.GET("/deliveries", s.ListCouriers)
	logistics.GET("/deliveries/:id", s.GetCourier)
	logistics.POST("/deliveries", s.CreateCourier)
	logistics.PUT("/deliveries/:id", s.UpdateCourier)
	logistics.DELETE("/deliveries/:id", s.DeleteCourier)
	logistics.GET("/stats", s.GetOrderStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
