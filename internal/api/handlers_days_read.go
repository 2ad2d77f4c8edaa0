package api

import "github.com/gofiber/fiber/v2"

// GetDay answers JSON null for a day that has never been written.
func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("day"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}

	entry, found, err := handler.journal.GetDay(day)
	if err != nil {
		return journalError(c, err, "failed to fetch day")
	}
	if !found {
		return c.JSON(nil)
	}
	return c.JSON(entry)
}
