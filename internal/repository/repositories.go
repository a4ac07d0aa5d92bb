package repository

import (
	"github.com/deppfellow/multitier-app/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Item *ItemRepository
}

// NewRepositories builds every repository on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Item: NewItemRepository(s.DB.Pool),
	}
}
