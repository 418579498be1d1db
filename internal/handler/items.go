package handler

import (
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-echo/internal/server"
	"github.com/deppfellow/items-echo/internal/service"
)

// PostDataRequest is the body of POST /api/post_data.
//
// Items keeps the raw JSON text so any JSON value round-trips unchanged,
// including number formatting and object key order.
type PostDataRequest struct {
	Items json.RawMessage `json:"items"`
}

// Validate accepts every payload: items is passed through as-is.
func (r *PostDataRequest) Validate() error {
	return nil
}

// NewPostDataRequest allocates a fresh request body for each call.
func NewPostDataRequest() *PostDataRequest {
	return &PostDataRequest{}
}

type ItemsHandler struct {
	Handler
	items *service.ItemsService
}

func NewItemsHandler(s *server.Server, items *service.ItemsService) *ItemsHandler {
	return &ItemsHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// PostData echoes the posted items back to the client.
func (h *ItemsHandler) PostData(c echo.Context, req *PostDataRequest) (json.RawMessage, error) {
	return h.items.Process(c.Request().Context(), req.Items)
}
