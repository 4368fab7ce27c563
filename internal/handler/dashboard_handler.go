package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	summary, err := h.dashboardService.Summary(userID, time.Now())
	if err != nil {
		h.logger.Error("failed to build dashboard summary", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error fetching dashboard summary"))
	}

	return c.JSON(summary)
}
