package handler

import (
	"github.com/deppfellow/multitier-app/internal/server"
	"github.com/deppfellow/multitier-app/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health *HealthHandler
	API    *APIHandler
	Item   *ItemHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	// Keep a nil *database.Database from becoming a non-nil Pinger.
	var db Pinger
	if s.DB != nil {
		db = s.DB
	}

	return &Handlers{
		Health: NewHealthHandler(s, db),
		API:    NewAPIHandler(s),
		Item:   NewItemHandler(s, services.Item),
	}
}
