package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/multitier-app/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(env string, threshold time.Duration) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Primary.Env = env
	cfg.Observability.Logging.SlowQueryThreshold = threshold
	return cfg
}

func TestDSNEscapesCredentials(t *testing.T) {
	dsn := DSN(&config.DatabaseConfig{
		Host:     "::1",
		Port:     5432,
		User:     "devops_user",
		Password: "p@ss:w/rd",
		Name:     "devops_app",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://devops_user:p%40ss%3Aw%2Frd@[::1]:5432/devops_app?sslmode=disable", dsn)
}

func TestPoolConfigSizing(t *testing.T) {
	cfg := testConfig("development", 0)
	cfg.Database.MaxOpenConns = 12
	cfg.Database.MaxIdleConns = 3
	log := zerolog.Nop()

	poolCfg, err := poolConfig(cfg, &log, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(12), poolCfg.MaxConns)
	assert.Equal(t, int32(3), poolCfg.MinConns)
	assert.Equal(t, 300*time.Second, poolCfg.MaxConnLifetime)
	assert.Equal(t, 60*time.Second, poolCfg.MaxConnIdleTime)
	assert.Nil(t, poolCfg.ConnConfig.Tracer)
}

func TestQueryTracerSelection(t *testing.T) {
	log := zerolog.Nop()

	assert.Nil(t, queryTracer(testConfig("production", 0), &log, nil))

	_, isSlow := queryTracer(testConfig("production", time.Second), &log, nil).(*slowQueryTracer)
	assert.True(t, isSlow)

	_, isTraceLog := queryTracer(testConfig("local", 0), &log, nil).(*tracelog.TraceLog)
	assert.True(t, isTraceLog)

	multi, ok := queryTracer(testConfig("local", time.Second), &log, nil).(*multiTracer)
	require.True(t, ok)
	assert.Len(t, multi.tracers, 2)
}

func TestSlowQueryTracerLogsSQLOnly(t *testing.T) {
	var buf bytes.Buffer
	tracer := newSlowQueryTracer(zerolog.New(&buf), time.Nanosecond)

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{
		SQL:  "SELECT * FROM items WHERE id = $1",
		Args: []any{"secret-value"},
	})
	time.Sleep(time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("canceling statement")})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "slow query", entry["message"])
	assert.Equal(t, "SELECT * FROM items WHERE id = $1", entry["sql"])
	assert.Equal(t, "canceling statement", entry["error"])
	assert.NotContains(t, buf.String(), "secret-value")
}

func TestSlowQueryTracerIgnoresFastQueries(t *testing.T) {
	var buf bytes.Buffer
	tracer := newSlowQueryTracer(zerolog.New(&buf), time.Hour)

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Zero(t, buf.Len())
}

func TestSlowQueryTracerUsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	tracer := newSlowQueryTracer(zerolog.Nop(), time.Nanosecond)

	requestLogger := zerolog.New(&buf).With().Str("request_id", "req-1").Logger()
	ctx := requestLogger.WithContext(context.Background())

	ctx = tracer.TraceQueryStart(ctx, nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	time.Sleep(time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

type recordingTracer struct {
	name  string
	calls *[]string
}

type orderKey struct{}

func (r recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	*r.calls = append(*r.calls, "start:"+r.name)
	return context.WithValue(ctx, orderKey{}, r.name)
}

func (r recordingTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	*r.calls = append(*r.calls, "end:"+r.name+":"+ctx.Value(orderKey{}).(string))
}

func TestMultiTracerThreadsContext(t *testing.T) {
	var calls []string
	mt := &multiTracer{tracers: []pgx.QueryTracer{
		recordingTracer{name: "a", calls: &calls},
		recordingTracer{name: "b", calls: &calls},
	}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Equal(t, []string{"start:a", "start:b", "end:a:b", "end:b:b"}, calls)
}

func TestMigrationsAreEmbeddedAndIdempotent(t *testing.T) {
	files, err := migrationFiles()
	require.NoError(t, err)

	names, err := fs.Glob(files, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_items.sql", "002_items_updated_at.sql"}, names)

	for _, name := range names {
		raw, err := fs.ReadFile(files, name)
		require.NoError(t, err)

		up, _, found := strings.Cut(string(raw), "---- create above / drop below ----")
		require.True(t, found, name)
		assert.Contains(t, strings.ToLower(up), "if not exists", name)
	}
}
