package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/devprojects/internal/middleware"
	"github.com/deppfellow/devprojects/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// defaultHealthCheckTimeout bounds each dependency check when the
// observability config does not.
const defaultHealthCheckTimeout = 5 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type HealthHandler struct {
	Handler
	db    dbPinger
	redis redisPinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB.Pool
	}
	if s.Redis != nil {
		h.redis = s.Redis
	}
	return h
}

// CheckHealth reports the database and Redis connectivity. It answers 200
// when every enabled check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]interface{}{}
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}
	isHealthy := true

	if h.db != nil && h.checkEnabled("database") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.checkTimeout())
		defer cancel()

		if !h.runCheck(checks, "database", func() error { return h.db.Ping(ctx) }) {
			isHealthy = false
		}
	}

	if h.redis != nil && h.checkEnabled("redis") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.checkTimeout())
		defer cancel()

		if !h.runCheck(checks, "redis", func() error { return h.redis.Ping(ctx).Err() }) {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordFailure(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// runCheck times ping and stores its outcome under name.
func (h *HealthHandler) runCheck(checks map[string]interface{}, name string, ping func() error) bool {
	start := time.Now()
	err := ping()
	elapsed := time.Since(start)

	if err != nil {
		checks[name] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		h.server.Logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordFailure(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return false
	}

	checks[name] = map[string]interface{}{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}
	return true
}

func (h *HealthHandler) checkEnabled(name string) bool {
	obs := h.server.Config.Observability
	return obs == nil || obs.HealthCheckEnabled(name)
}

func (h *HealthHandler) checkTimeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return defaultHealthCheckTimeout
}

func (h *HealthHandler) recordFailure(attributes map[string]interface{}) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attributes)
	}
}
