package service

import (
	"github.com/deppfellow/items-echo/internal/server"
)

// Services groups every service so handlers receive a single dependency.
type Services struct {
	Items *ItemsService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Items: NewItemsService(s),
	}
}
