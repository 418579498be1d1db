package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-echo/internal/middleware"
	"github.com/deppfellow/items-echo/internal/server"
)

// HealthHandler exposes a system endpoint monitors and load balancers can
// use to verify the service is alive.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports status, timestamp, environment, uptime and the state
// of the optional integrations. The service has no external dependencies,
// so a running process is a healthy one.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	newRelic := "disabled"
	if h.server.LoggerService.GetApplication() != nil {
		newRelic = "enabled"
	}

	rateLimit := "disabled"
	if h.server.Config.Server.RateLimit > 0 {
		rateLimit = fmt.Sprintf("%g/s", h.server.Config.Server.RateLimit)
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      h.server.Uptime().Round(time.Second).String(),
		"checks": map[string]interface{}{
			"new_relic":  map[string]string{"status": newRelic},
			"rate_limit": map[string]string{"status": rateLimit},
		},
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":    "response",
				"operation":     "health_check",
				"error_type":    "json_response_error",
				"error_message": err.Error(),
			})
		}

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
