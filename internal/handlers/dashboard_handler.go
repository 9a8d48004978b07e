package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillbridge/backend/internal/middleware"
	"skillbridge/backend/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized.",
		})
	}

	dashboard, err := h.dashboardService.GetDashboard(userID)
	if err != nil {
		return err
	}

	return c.JSON(dashboard)
}

func (h *DashboardHandler) HandleGetScan(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized.",
		})
	}

	scanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid scan ID format.",
		})
	}

	scan, err := h.dashboardService.GetScan(userID, scanID)
	if err != nil {
		return err
	}

	return c.JSON(scan)
}
