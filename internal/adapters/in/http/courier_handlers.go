package http

import (
	"net/http"

	"ayoya/internal/core/application/usecases/commands"
	"ayoya/internal/core/application/usecases/queries"
	"ayoya/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCourierRequest registers a new delivery person.
type CreateCourierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateCourierResponse returns the generated roster entry ID.
type CreateCourierResponse struct {
	ID string `json:"id"`
}

// UpdateCourierRequest is a partial roster update; nil fields are untouched.
type UpdateCourierRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Active *bool   `json:"active"`
}

// ListCouriers handles GET /api/logistics/deliveries.
func (s *Server) ListCouriers(ctx echo.Context) error {
	query := queries.NewListCouriersQuery(ctx.QueryParam("active") == "true")

	couriers, err := s.listCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, couriers)
}

// CreateCourier handles POST /api/logistics/deliveries.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, req.Phone)
	if err != nil {
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	id, err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCourierResponse{ID: id.String()})
}

// GetCourier handles GET /api/logistics/deliveries/:id.
func (s *Server) GetCourier(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid delivery id")
	}

	return s.respondWithCourier(ctx, id)
}

// UpdateCourier handles PUT /api/logistics/deliveries/:id.
func (s *Server) UpdateCourier(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid delivery id")
	}

	var req UpdateCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateCourierCommand(id, req.Name, req.Phone, req.Active)
	if err != nil {
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.updateCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCourier(ctx, id)
}

// respondWithCourier returns the refreshed roster entry after a lookup or a
// mutation.
func (s *Server) respondWithCourier(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetCourierQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, item)
}

// DeleteCourier handles DELETE /api/logistics/deliveries/:id.
func (s *Server) DeleteCourier(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid delivery id")
	}

	cmd, err := commands.NewDeleteCourierCommand(id)
	if err != nil {
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.deleteCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
