package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/deppfellow/devprojects/internal/config"
	"github.com/deppfellow/devprojects/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthFixture struct {
	handler *HealthHandler
	db      pgxmock.PgxPoolIface
	redis   *miniredis.Miniredis
}

func newHealthFixture(t *testing.T) *healthFixture {
	t.Helper()

	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := zerolog.Nop()
	srv := &server.Server{
		Logger: &logger,
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Redis: client,
	}

	h := NewHealthHandler(srv)
	h.db = db

	return &healthFixture{handler: h, db: db, redis: mr}
}

func (f *healthFixture) check(t *testing.T) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
	require.NoError(t, f.handler.CheckHealth(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCheckHealth_Healthy(t *testing.T) {
	f := newHealthFixture(t)
	f.db.ExpectPing()

	status, body := f.check(t)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])

	checks := body["checks"].(map[string]any)
	assert.Equal(t, "healthy", checks["database"].(map[string]any)["status"])
	assert.Equal(t, "healthy", checks["redis"].(map[string]any)["status"])
}

func TestCheckHealth_DatabaseDown(t *testing.T) {
	f := newHealthFixture(t)
	f.db.ExpectPing().WillReturnError(errors.New("connection refused"))

	status, body := f.check(t)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unhealthy", body["status"])

	database := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "connection refused", database["error"])
}

func TestCheckHealth_RedisDown(t *testing.T) {
	f := newHealthFixture(t)
	f.db.ExpectPing()
	f.redis.Close()

	status, body := f.check(t)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unhealthy", body["checks"].(map[string]any)["redis"].(map[string]any)["status"])
}
