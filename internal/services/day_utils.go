package services

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// ParseStartDate accepts a calendar date (YYYY-MM-DD) or an RFC 3339
// timestamp and returns local midnight of that calendar day.
func ParseStartDate(raw string, location *time.Location) (time.Time, bool) {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	if parsed, err := time.ParseInLocation(dateLayout, trimmed, location); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return DateAtLocation(parsed, location), true
	}
	return time.Time{}, false
}

// calendarDaysBetween counts whole calendar days from one local date to
// another, independent of DST transitions.
func calendarDaysBetween(from time.Time, to time.Time, location *time.Location) int {
	fromYear, fromMonth, fromDay := DateAtLocation(from, location).Date()
	toYear, toMonth, toDay := DateAtLocation(to, location).Date()
	fromUTC := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	toUTC := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)
	return int(toUTC.Sub(fromUTC).Hours() / 24)
}
