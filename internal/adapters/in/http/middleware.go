package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// operatorContextKey is where RequireOperator stores the presented token.
const operatorContextKey = "operator"

// RequireOperator guards the logistics routes. It checks that a bearer token
// is present and places it on the request context; verifying the token is an
// external collaborator's job, not this service's.
func RequireOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return respondError(ctx, http.StatusUnauthorized, "operator token required")
		}

		ctx.Set(operatorContextKey, token)
		return next(ctx)
	}
}
