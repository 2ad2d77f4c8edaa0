package api

import "github.com/gofiber/fiber/v2"

// PutDay replaces the whole entry for the day; nothing is merged.
func (handler *Handler) PutDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("day"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}

	entry, err := handler.parseDayEntry(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.journal.PutDay(day, entry); err != nil {
		return journalError(c, err, "failed to save day")
	}
	return apiOK(c)
}
