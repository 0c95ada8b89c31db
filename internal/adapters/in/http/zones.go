package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Zone is a Cotonou delivery zone offered on the order form.
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// zones is the static delivery coverage. Orders outside Cotonou carry no
// zone at all, so this list is purely a form helper.
var zones = []Zone{
	{ID: "centre", Name: "Cotonou Centre (Ganhi, Jonquet, Zongo)"},
	{ID: "akpakpa", Name: "Akpakpa (Agbodjèdo, PK3, Sègbèya)"},
	{ID: "cadjehoun", Name: "Cadjèhoun (Haie Vive, Patte d'Oie)"},
	{ID: "gbegamey", Name: "Gbégamey (Zogbo, Mènontin)"},
	{ID: "fifadji", Name: "Fifadji (Gbèto, Missèbo)"},
	{ID: "fidjrosse", Name: "Fidjrossè (Cocotiers, Plage)"},
	{ID: "godomey", Name: "Godomey (Togoudo, Atrokpocodji)"},
	{ID: "calavi", Name: "Abomey-Calavi (Zogbadjè, Tankpè)"},
}

// GetZones handles GET /api/public/zones.
func (s *Server) GetZones(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, zones)
}
