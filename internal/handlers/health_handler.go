package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler serves the liveness probe. It deliberately does not touch
// storage: the probe reports process liveness, not database health.
type HealthHandler struct {
	environment string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment}
}

// RegisterRoutes registers the health route with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleCheck)
}

// HandleCheck reports liveness with the current timestamp.
func (h *HealthHandler) HandleCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	})
}
