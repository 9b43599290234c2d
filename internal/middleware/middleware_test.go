package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/devprojects/internal/config"
	"github.com/deppfellow/devprojects/internal/errs"
	"github.com/deppfellow/devprojects/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(rateLimit float64) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Logger: &logger,
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{RateLimit: rateLimit},
		},
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID_GeneratesAndReuses(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestEnhanceContext_StoresLoggerInRequestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	s := newTestServer(0)
	s.Logger = &logger

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/developers/:id", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/developers/1", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/developers/:id", line["path"])
	assert.Equal(t, "from service", line["message"])
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
		options []string
	}{
		{
			name:    "http error",
			err:     fmt.Errorf("gate: %w", errs.NewConflictError("Email already exists.", true, nil)),
			status:  http.StatusConflict,
			code:    "CONFLICT",
			message: "Email already exists.",
		},
		{
			name:    "unsupported option",
			err:     errs.NewUnsupportedOptionError("Invalid OS option.", []string{"Windows", "Linux", "MacOS"}),
			status:  http.StatusBadRequest,
			code:    "UNSUPPORTED_OPTION",
			message: "Invalid OS option.",
			options: []string{"Windows", "Linux", "MacOS"},
		},
		{
			name:    "unknown route",
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Route not found",
		},
		{
			name:    "echo error",
			err:     echo.NewHTTPError(http.StatusBadRequest, "name must be of type string"),
			status:  http.StatusBadRequest,
			code:    "BAD_REQUEST",
			message: "name must be of type string",
		},
		{
			name:    "database error",
			err:     fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", TableName: "developers", ConstraintName: "developers_email_key"}),
			status:  http.StatusConflict,
			code:    "DEVELOPER_ALREADY_EXISTS",
			message: "A Developer with this Email already exists",
		},
		{
			name:    "unknown error",
			err:     fmt.Errorf("boom"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	global := NewGlobalMiddlewares(newTestServer(0))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.options, body.Options)
		})
	}
}

func TestRateLimit_RejectsAboveLimit(t *testing.T) {
	rl := NewRateLimitMiddleware(newTestServer(1))
	require.True(t, rl.Enabled())

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(newTestServer(1)).GlobalErrorHandler
	e.Use(rl.Limit())
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, rec).Code)
}

func TestRateLimit_DisabledAtZero(t *testing.T) {
	assert.False(t, NewRateLimitMiddleware(newTestServer(0)).Enabled())
}

func TestRequireAuth_PassThroughWithoutSecret(t *testing.T) {
	auth := NewAuthMiddleware(newTestServer(0))

	called := false
	h := auth.RequireAuth(func(c echo.Context) error {
		called = true
		return nil
	})

	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/developers", nil), httptest.NewRecorder())
	require.NoError(t, h(c))
	assert.True(t, called)
}
