package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-echo/internal/handler"
	"github.com/deppfellow/items-echo/static"
)

// registerSystemRoutes registers endpoints that are not part of the API
// proper: health, docs UI and the embedded docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
