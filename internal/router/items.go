package router

import (
	"net/http"

	"github.com/deppfellow/multitier-app/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerItemRoutes(api *echo.Group, h *handler.Handlers) {
	items := api.Group("/items")

	items.GET("", handler.OK(h.Item.ListItems))
	items.POST("", handler.Handle(h.Item.CreateItem, http.StatusCreated))
	items.GET("/:id", handler.OK(h.Item.GetItem))
	items.PUT("/:id", handler.OK(h.Item.UpdateItem))
	items.DELETE("/:id", handler.OK(h.Item.DeleteItem))
}
