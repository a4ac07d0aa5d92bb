// Package router initializes the Echo router: it installs the
// middleware chain and the global error handler and registers every
// route group.
package router

import (
	"github.com/deppfellow/multitier-app/internal/handler"
	"github.com/deppfellow/multitier-app/internal/middleware"
	"github.com/deppfellow/multitier-app/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.BodyLimit(),
		middlewares.Global.Gzip(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerItemRoutes(router.Group("/api"), h)

	return router
}
