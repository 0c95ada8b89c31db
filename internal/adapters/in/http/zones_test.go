package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayoya/internal/core/domain/model/kernel"
)

func TestGetZones(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/public/zones", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	server := &Server{}
	require.NoError(t, server.GetZones(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []Zone
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 8)
	assert.Equal(t, "centre", body[0].ID)

	// every advertised zone must be accepted by the address value object
	for _, zone := range body {
		_, err := kernel.NewAddress("Rue 201", "Cotonou", zone.ID)
		assert.NoError(t, err, zone.ID)
	}
}
