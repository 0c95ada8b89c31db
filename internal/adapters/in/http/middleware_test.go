package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireOperator(t *testing.T) {
	e := echo.New()
	next := func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	}

	t.Run("should reject missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/logistics/orders", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		require.NoError(t, RequireOperator(next)(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "operator token required")
	})

	t.Run("should reject blank bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/logistics/orders", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer   ")
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		require.NoError(t, RequireOperator(next)(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject non-bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/logistics/orders", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		require.NoError(t, RequireOperator(next)(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should pass token to context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/logistics/orders", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer secret-token")
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		require.NoError(t, RequireOperator(next)(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "secret-token", ctx.Get(operatorContextKey))
	})
}
