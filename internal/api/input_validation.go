package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/eczema-tracker/internal/models"
)

var errInvalidDayParam = errors.New("invalid day")

// parseDayParam accepts 1..14 in any integer spelling ("01" is day 1).
func parseDayParam(raw string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !models.IsProtocolDay(day) {
		return 0, errInvalidDayParam
	}
	return day, nil
}

func (handler *Handler) parseStartDate(c *fiber.Ctx) (string, error) {
	input := startDateInput{}
	if err := c.BodyParser(&input); err != nil {
		return "", err
	}
	input.Date = strings.TrimSpace(input.Date)
	if err := handler.validate.Struct(input); err != nil {
		return "", err
	}
	return input.Date, nil
}

func (handler *Handler) parseDayEntry(c *fiber.Ctx) (models.DayEntry, error) {
	entry := models.DayEntry{}
	if err := c.BodyParser(&entry); err != nil {
		return models.DayEntry{}, err
	}
	if err := handler.validate.Struct(entry); err != nil {
		return models.DayEntry{}, err
	}
	return entry, nil
}
