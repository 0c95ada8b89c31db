package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ayoya/internal/core/application/usecases/commands"
	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body for every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps an application error to a status code:
//   - 404 unknown object
//   - 409 stale write (optimistic lock)
//   - 422 validation or business-rule failure
//   - 500 everything else, logged
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return respondError(ctx, http.StatusConflict,
			"the order was modified concurrently, reload and retry")
	case isUnprocessable(err):
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("request failed", "error", err)
		return respondError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

// isUnprocessable reports whether the error is a validation or
// business-rule failure the client can fix.
func isUnprocessable(err error) bool {
	for _, sentinel := range []error{
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
		order.ErrInvalidTransition,
		order.ErrAssignmentLocked,
		order.ErrInvalidOrderState,
		courier.ErrCourierInactive,
		courier.ErrCourierHasActiveOrders,
		kernel.ErrZoneNotAllowed,
		commands.ErrNothingToUpdate,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
