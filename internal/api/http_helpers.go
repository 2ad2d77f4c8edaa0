package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiOK(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// journalError maps journal sentinel errors to client errors and everything
// else to a 500 carrying fallback.
func journalError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidDay):
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	case errors.Is(err, services.ErrInvalidPhotoName):
		return apiError(c, fiber.StatusBadRequest, "invalid filename")
	case errors.Is(err, services.ErrEmptyPhoto):
		return apiError(c, fiber.StatusBadRequest, "photo is required")
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}
