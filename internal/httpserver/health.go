package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/transport"
)

type HealthHTTP struct {
	ServiceName string
	Version     string
}

func (h *HealthHTTP) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"service":   h.ServiceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHTTP) GetVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, transport.VersionResponse{Version: h.Version})
}
