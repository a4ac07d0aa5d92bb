package handler

import (
	"net/http"

	"github.com/deppfellow/multitier-app/internal/server"
	"github.com/labstack/echo/v4"
)

// APIVersion is advertised by the index endpoint.
const APIVersion = "1.0.0"

// APIHandler serves the discovery document at /api.
type APIHandler struct {
	Handler
}

func NewAPIHandler(s *server.Server) *APIHandler {
	return &APIHandler{
		Handler: NewHandler(s),
	}
}

type apiIndex struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	BaseURL   string            `json:"base_url"`
	Endpoints map[string]string `json:"endpoints"`
}

func (h *APIHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, apiIndex{
		Message: "Welcome to DevOps Multi-Tier Application API",
		Version: APIVersion,
		BaseURL: h.server.Config.Primary.APIURL,
		Endpoints: map[string]string{
			"health": "/health",
			"items":  "/api/items",
		},
	})
}
