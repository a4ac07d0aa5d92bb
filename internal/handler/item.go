package handler

import (
	"github.com/deppfellow/multitier-app/internal/errs"
	"github.com/deppfellow/multitier-app/internal/model"
	"github.com/deppfellow/multitier-app/internal/response"
	"github.com/deppfellow/multitier-app/internal/server"
	"github.com/deppfellow/multitier-app/internal/service"
	"github.com/labstack/echo/v4"
)

const itemDeletedMessage = "Item deleted successfully"

// ItemHandler serves /api/items.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// errItemNotFound answers ids that cannot name a row.
func errItemNotFound() error {
	return errs.NewNotFoundError("Item not found", true, nil)
}

func (h *ItemHandler) ListItems(c echo.Context, _ *model.ListItemsRequest) (response.Response, error) {
	items, err := h.items.ListItems(c.Request().Context())
	if err != nil {
		return response.Response{}, err
	}
	return response.List(items), nil
}

func (h *ItemHandler) GetItem(c echo.Context, req *model.ItemIDRequest) (response.Response, error) {
	id, ok := req.ParseID()
	if !ok {
		return response.Response{}, errItemNotFound()
	}

	item, err := h.items.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.Response{}, err
	}
	return response.Data(item), nil
}

func (h *ItemHandler) CreateItem(c echo.Context, req *model.CreateItemRequest) (response.Response, error) {
	item, err := h.items.CreateItem(c.Request().Context(), req)
	if err != nil {
		return response.Response{}, err
	}
	return response.Data(item), nil
}

// UpdateItem replaces the name and, when present, the description.
func (h *ItemHandler) UpdateItem(c echo.Context, req *model.UpdateItemRequest) (response.Response, error) {
	id, ok := req.ParseID()
	if !ok {
		return response.Response{}, errItemNotFound()
	}

	item, err := h.items.UpdateItem(c.Request().Context(), id, req)
	if err != nil {
		return response.Response{}, err
	}
	return response.Data(item), nil
}

func (h *ItemHandler) DeleteItem(c echo.Context, req *model.ItemIDRequest) (response.Response, error) {
	id, ok := req.ParseID()
	if !ok {
		return response.Response{}, errItemNotFound()
	}

	if err := h.items.DeleteItem(c.Request().Context(), id); err != nil {
		return response.Response{}, err
	}
	return response.Message(itemDeletedMessage), nil
}
