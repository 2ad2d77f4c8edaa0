package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	now := handler.now().In(handler.location)
	payload := handler.exports.BuildPayload(now)

	output, err := services.EncodeExportCSV(payload.Entries)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", services.BuildExportFilename(now, "csv"))
	return c.Send(output)
}
