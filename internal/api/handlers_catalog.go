package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/eczema-tracker/internal/models"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

func (handler *Handler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"symptoms":      models.SymptomOptions(),
		"bodyAreas":     models.BodyAreas(),
		"dietChecklist": models.DietChecklist(),
	})
}

func (handler *Handler) GetProtocol(c *fiber.Ctx) error {
	doc := handler.journal.LoadDocument()
	now := handler.now()
	currentDay := services.ProtocolDayFor(doc.StartDate, now, handler.location)

	return c.JSON(fiber.Map{
		"startDate":       doc.StartDate,
		"currentDay":      currentDay,
		"current":         services.ProtocolInfoFor(currentDay),
		"hoursOnProtocol": services.HoursOnProtocol(doc.StartDate, now, handler.location),
		"days":            models.ProtocolDays(),
	})
}

func (handler *Handler) GetProgress(c *fiber.Ctx) error {
	return c.JSON(handler.progress.Build(handler.now()))
}
