package service

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/deppfellow/items-echo/internal/lib/utils"
	"github.com/deppfellow/items-echo/internal/logger"
	"github.com/deppfellow/items-echo/internal/server"
)

// ItemsService processes the item lists posted by clients.
type ItemsService struct {
	server *server.Server
}

func NewItemsService(s *server.Server) *ItemsService {
	return &ItemsService{
		server: s,
	}
}

// Process prints items to the server's diagnostic stream and returns them.
//
// items is the raw JSON value the client sent; any JSON type is accepted
// and returned byte-for-byte equivalent. A missing value becomes [].
func (s *ItemsService) Process(ctx context.Context, items json.RawMessage) (json.RawMessage, error) {
	if len(items) == 0 {
		items = json.RawMessage("[]")
	}

	if err := utils.PrintJSON(s.server.Out, items); err != nil {
		return nil, fmt.Errorf("failed to print items: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int("items_bytes", len(items)).
		Msg("items processed")

	return items, nil
}
