package handler

import (
	"github.com/deppfellow/items-echo/internal/server"
	"github.com/deppfellow/items-echo/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Items   *ItemsHandler   // Items serves the echo endpoint.
	Health  *HealthHandler  // Health serves the status endpoint.
	OpenAPI *OpenAPIHandler // OpenAPI serves the API documentation UI.
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Items:   NewItemsHandler(s, services.Items),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
