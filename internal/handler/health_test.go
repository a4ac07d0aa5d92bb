package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/multitier-app/internal/config"
	"github.com/deppfellow/multitier-app/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func newTestServer(cfg *config.Config) *server.Server {
	log := zerolog.Nop()
	return &server.Server{
		Config:    cfg,
		Logger:    &log,
		StartedAt: time.Now().Add(-90 * time.Second),
	}
}

func checkHealth(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	require.NoError(t, h.CheckHealth(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthy(t *testing.T) {
	cfg := config.DefaultConfig()
	h := NewHealthHandler(newTestServer(cfg), pingerFunc(func(context.Context) error { return nil }))

	status, body := checkHealth(t, h)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "development", body["environment"])
	assert.GreaterOrEqual(t, body["uptime"], 90.0)
	assert.NotEmpty(t, body["timestamp"])

	checks := body["checks"].(map[string]any)
	assert.Equal(t, "healthy", checks["database"].(map[string]any)["status"])
}

func TestUnhealthyDatabase(t *testing.T) {
	cfg := config.DefaultConfig()
	h := NewHealthHandler(newTestServer(cfg), pingerFunc(func(context.Context) error {
		return errors.New("failed to connect to `user=devops_user database=devops_app`: 10.0.0.5:5432: password authentication failed")
	}))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	require.NoError(t, h.CheckHealth(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "devops_user")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.NotContains(t, rec.Body.String(), "password authentication")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	database := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "unhealthy", database["status"])
	assert.Equal(t, "database unreachable", database["error"])
}

func TestHealthPingUsesConfiguredTimeout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Observability.HealthChecks.Timeout = time.Second

	var deadline time.Time
	h := NewHealthHandler(newTestServer(cfg), pingerFunc(func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	}))

	checkHealth(t, h)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestHealthWithoutDatabase(t *testing.T) {
	status, _ := checkHealth(t, NewHealthHandler(newTestServer(config.DefaultConfig()), nil))
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestHealthChecksDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Observability.HealthChecks.Enabled = false

	called := false
	h := NewHealthHandler(newTestServer(cfg), pingerFunc(func(context.Context) error {
		called = true
		return errors.New("down")
	}))

	status, body := checkHealth(t, h)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, called)
	assert.Empty(t, body["checks"])
}

type countingPayload struct {
	Value int `json:"value"`
}

func (*countingPayload) Validate() error { return nil }

func TestNewRequestAllocatesPerCall(t *testing.T) {
	a := newRequest[*countingPayload]()
	b := newRequest[*countingPayload]()
	require.NotNil(t, a)
	require.NotNil(t, b)

	a.Value = 1
	assert.Zero(t, b.Value)
}
