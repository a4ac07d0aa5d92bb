// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Store failures leave this package as *errs.HTTPError.
package service

import (
	"github.com/deppfellow/multitier-app/internal/repository"
)

type Services struct {
	Item *ItemService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Item: NewItemService(repos.Item),
	}
}
