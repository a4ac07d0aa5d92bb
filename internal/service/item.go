package service

import (
	"context"
	"net/http"

	"github.com/deppfellow/multitier-app/internal/errs"
	"github.com/deppfellow/multitier-app/internal/model"
	"github.com/deppfellow/multitier-app/internal/sqlerr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ItemStore persists items. *repository.ItemRepository implements it.
type ItemStore interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	CreateItem(ctx context.Context, name, description string) (*model.Item, error)
	UpdateItem(ctx context.Context, id int64, name string, description *string) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type ItemService struct {
	store ItemStore
}

func NewItemService(store ItemStore) *ItemService {
	return &ItemService{store: store}
}

func (s *ItemService) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, storeError(err, "Failed to fetch items")
	}
	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return nil, storeError(err, "Failed to fetch item")
	}
	return item, nil
}

// CreateItem stores a new item. An omitted description is stored as "".
func (s *ItemService) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error) {
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	item, err := s.store.CreateItem(ctx, req.Name, description)
	if err != nil {
		return nil, storeError(err, "Failed to create item")
	}

	zerolog.Ctx(ctx).Debug().Int64("item_id", item.ID).Msg("item created")
	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, id int64, req *model.UpdateItemRequest) (*model.Item, error) {
	item, err := s.store.UpdateItem(ctx, id, req.Name, req.Description)
	if err != nil {
		return nil, storeError(err, "Failed to update item")
	}

	zerolog.Ctx(ctx).Debug().Int64("item_id", item.ID).Msg("item updated")
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return storeError(err, "Failed to delete item")
	}

	zerolog.Ctx(ctx).Debug().Int64("item_id", id).Msg("item deleted")
	return nil
}

// storeError keeps client errors (404, constraint 400s) produced by
// sqlerr.HandleError and replaces everything else with a generic 500
// carrying message. The driver error stays attached as the cause.
func storeError(err error, message string) error {
	var httpErr *errs.HTTPError
	if errors.As(sqlerr.HandleError(err), &httpErr) && httpErr.Status < http.StatusInternalServerError {
		return httpErr
	}
	return errs.NewStoreError(message, errors.WithStack(err))
}
