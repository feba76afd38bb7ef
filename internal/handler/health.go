package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/boardhub/internal/middleware"
	"github.com/deppfellow/boardhub/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthCheck probes one dependency.
type HealthCheck struct {
	Name string
	// Critical checks turn the overall status unhealthy when they fail.
	Critical bool
	Ping     func(ctx context.Context) error
}

// HealthHandler serves GET /status.
type HealthHandler struct {
	Handler
	checks  []HealthCheck
	timeout time.Duration
}

// NewHealthHandler probes the dependencies listed in
// observability.health_checks.checks. Only the database is critical.
func NewHealthHandler(s *server.Server) *HealthHandler {
	var checks []HealthCheck

	if s.Config.Observability.HealthCheckEnabled("database") && s.DB != nil {
		checks = append(checks, HealthCheck{
			Name:     "database",
			Critical: true,
			Ping:     s.DB.Pool.Ping,
		})
	}

	if s.Config.Observability.HealthCheckEnabled("redis") && s.Redis != nil {
		checks = append(checks, HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error {
				return s.Redis.Ping(ctx).Err()
			},
		})
	}

	return newHealthHandler(s, checks)
}

func newHealthHandler(s *server.Server, checks []HealthCheck) *HealthHandler {
	timeout := s.Config.Observability.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthHandler{Handler: NewHandler(s), checks: checks, timeout: timeout}
}

// CheckHealth responds 200 when every critical check passes and 503
// otherwise. Non-critical failures are reported but do not change the status.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]map[string]any, len(h.checks))
	healthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.Ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			checks[check.Name] = map[string]any{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			if check.Critical {
				healthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.Name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordFailure(check.Name, elapsed, err)
			continue
		}

		checks[check.Name] = map[string]any{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}
	}

	body := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !healthy {
		body["status"] = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, body)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, body)
}

func (h *HealthHandler) recordFailure(name string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       name,
		"operation":        "health_check",
		"error_type":       name + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
