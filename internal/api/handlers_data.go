package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetData(c *fiber.Ctx) error {
	return c.JSON(handler.journal.LoadDocument())
}

func (handler *Handler) SetStartDate(c *fiber.Ctx) error {
	date, err := handler.parseStartDate(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.journal.SetStartDate(date); err != nil {
		return journalError(c, err, "failed to save start date")
	}
	return apiOK(c)
}
