package services

import (
	"math"
	"time"

	"github.com/terraincognita07/eczema-tracker/internal/models"
)

// ProtocolDayFor returns the active protocol day, clamped to 1..14. A nil or
// unparseable start date yields day 1.
func ProtocolDayFor(startDate *string, now time.Time, location *time.Location) int {
	if startDate == nil {
		return models.FirstProtocolDay
	}
	start, ok := ParseStartDate(*startDate, location)
	if !ok {
		return models.FirstProtocolDay
	}
	return ProtocolDayBetween(start, now, location)
}

func ProtocolDayBetween(start time.Time, now time.Time, location *time.Location) int {
	day := calendarDaysBetween(start, now, location) + 1
	if day < models.FirstProtocolDay {
		return models.FirstProtocolDay
	}
	if day > models.LastProtocolDay {
		return models.LastProtocolDay
	}
	return day
}

// ProtocolInfoFor falls back to day 1 outside the protocol range.
func ProtocolInfoFor(day int) models.ProtocolDay {
	table := models.ProtocolDays()
	if !models.IsProtocolDay(day) {
		return table[0]
	}
	return table[day-1]
}

func HoursOnProtocol(startDate *string, now time.Time, location *time.Location) int {
	if startDate == nil {
		return 0
	}
	start, ok := ParseStartDate(*startDate, location)
	if !ok {
		return 0
	}
	hours := math.Floor(now.Sub(start).Hours())
	if hours < 0 {
		return 0
	}
	return int(hours)
}

// ProtocolDate is the calendar date of a given protocol day, empty when the
// protocol has not started.
func ProtocolDate(startDate *string, day int, location *time.Location) string {
	if startDate == nil {
		return ""
	}
	start, ok := ParseStartDate(*startDate, location)
	if !ok {
		return ""
	}
	return start.AddDate(0, 0, day-1).Format(dateLayout)
}
