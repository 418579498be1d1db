package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-echo/internal/handler"
)

func registerItemsRoutes(api *echo.Group, h *handler.Handlers) {
	api.POST("/post_data", handler.Handle(h.Items.PostData, http.StatusOK, handler.NewPostDataRequest))
}
