package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skillbridge/backend/internal/models"
)

// ErrorHandler maps the service error taxonomy onto HTTP statuses in one
// place; handlers return sentinel-wrapped errors instead of building
// status responses themselves.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, models.ErrEmailTaken):
		code = fiber.StatusConflict
	case errors.Is(err, models.ErrUnusableDocument):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, models.ErrAIService),
		errors.Is(err, models.ErrNoJSONFound),
		errors.Is(err, models.ErrMalformedJSON):
		code = fiber.StatusBadGateway
	case errors.Is(err, models.ErrStorage):
		code = fiber.StatusInternalServerError
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
