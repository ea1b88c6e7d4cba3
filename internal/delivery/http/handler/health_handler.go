package handler

import (
	"context"
	"time"

	"github.com/conecta-coleta/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthCheck проверяет одну зависимость сервиса
type HealthCheck func(ctx context.Context) error

// HealthHandler - проверка состояния сервиса
type HealthHandler struct {
	version string
	checks  map[string]HealthCheck
	logger  *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler; checks может быть пустым
func NewHealthHandler(version string, checks map[string]HealthCheck, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		version: version,
		checks:  checks,
		logger:  logger,
	}
}

// Health godoc
// @Summary Состояние сервиса
// @Description Статус "degraded" означает, что сервис работает на резервном каталоге или без кеша.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:       "healthy",
		Version:      h.version,
		Dependencies: make(map[string]string, len(h.checks)),
	}

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Dependencies[name] = "down"
			resp.Status = "degraded"
			continue
		}
		resp.Dependencies[name] = "up"
	}

	return c.JSON(resp)
}
