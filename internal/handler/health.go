package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/multitier-app/internal/middleware"
	"github.com/deppfellow/multitier-app/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	// Reported to clients in place of the ping error, which is only logged.
	databaseUnreachable = "database unreachable"
)

var errNoDatabase = errors.New("database not configured")

// Pinger is satisfied by *database.Database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness plus the configured dependency checks.
type HealthHandler struct {
	Handler
	db Pinger
}

func NewHealthHandler(s *server.Server, db Pinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      db,
	}
}

// CheckHealth answers 200 when every enabled check passes and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      statusHealthy,
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.server.StartedAt).Seconds(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	if obs.HealthChecks.Enabled && obs.HasCheck("database") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
		defer cancel()

		dbStart := time.Now()
		err := errNoDatabase
		if h.db != nil {
			err = h.db.Ping(ctx)
		}
		elapsed := time.Since(dbStart)

		if err != nil {
			isHealthy = false
			checks["database"] = map[string]interface{}{
				"status":        statusUnhealthy,
				"response_time": elapsed.String(),
				"error":         databaseUnreachable,
			}

			logger.Error().
				Err(err).
				Dur("response_time", elapsed).
				Msg("database health check failed")

			h.server.LoggerService.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		} else {
			checks["database"] = map[string]interface{}{
				"status":        statusHealthy,
				"response_time": elapsed.String(),
			}

			logger.Debug().
				Dur("response_time", elapsed).
				Msg("database health check passed")
		}
	}

	if !isHealthy {
		response["status"] = statusUnhealthy

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.server.LoggerService.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
