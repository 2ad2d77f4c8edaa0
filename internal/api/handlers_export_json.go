package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	now := handler.now().In(handler.location)

	serialized, err := services.EncodeExportJSON(handler.exports.BuildPayload(now))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, services.BuildExportFilename(now, "json"))
	return c.Send(serialized)
}
