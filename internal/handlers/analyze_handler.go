package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillbridge/backend/internal/middleware"
	"skillbridge/backend/internal/models"
	"skillbridge/backend/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
	validate *validator.Validate
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		validate: validator.New(),
	}
}

func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized.",
		})
	}

	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body.",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume text and job role are required.",
		})
	}

	resp, err := h.analyzer.Analyze(c.Context(), userID, req.Resume, req.JobRole, req.JobDescription)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
