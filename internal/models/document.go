package models

import (
	"strconv"
	"strings"
	"time"
)

const (
	FirstProtocolDay = 1
	LastProtocolDay  = 14
)

// Document is the single persisted journal state.
type Document struct {
	StartDate *string             `json:"startDate"`
	Days      map[string]DayEntry `json:"days"`
}

// DayEntry is one protocol day as submitted by the client. Every field is
// optional: an entry created by a photo upload carries only Photos. Empty
// collections and strings are stored as sent so a saved entry reads back
// unchanged.
type DayEntry struct {
	ItchLevel      *int            `json:"itchLevel,omitempty" validate:"omitempty,min=1,max=10"`
	OverallFeeling *int            `json:"overallFeeling,omitempty" validate:"omitempty,min=1,max=10"`
	Symptoms       []string        `json:"symptoms,omitzero"`
	BodyAreas      map[string]int  `json:"bodyAreas,omitzero" validate:"omitempty,dive,keys,required,endkeys,min=0,max=10"`
	DietChecklist  map[string]bool `json:"dietChecklist,omitzero"`
	SuhoorMeal     string          `json:"suhoorMeal"`
	IftarMeal      string          `json:"iftarMeal"`
	Notes          string          `json:"notes"`
	Photos         []string        `json:"photos,omitzero"`
	Timestamp      *string         `json:"timestamp" validate:"omitempty,timestamp"`
}

// TimestampLayout matches the client's ISO strings, milliseconds included.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t the way the client stamps a saved entry.
func FormatTimestamp(t time.Time) *string {
	value := t.UTC().Format(TimestampLayout)
	return &value
}

// ParseTimestamp accepts any RFC 3339 timestamp, fractional seconds included.
func ParseTimestamp(raw string) (time.Time, bool) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func EmptyDocument() Document {
	return Document{Days: make(map[string]DayEntry)}
}

// Normalize guarantees a non-nil Days map so the document always encodes
// with both top-level keys.
func (doc *Document) Normalize() {
	if doc.Days == nil {
		doc.Days = make(map[string]DayEntry)
	}
}

// Saved reports whether the entry was explicitly saved by the user.
func (entry DayEntry) Saved() bool {
	return entry.Timestamp != nil && *entry.Timestamp != ""
}

func (entry DayEntry) SavedAt() (time.Time, bool) {
	if !entry.Saved() {
		return time.Time{}, false
	}
	return ParseTimestamp(*entry.Timestamp)
}

func (entry DayEntry) HasPhoto(filename string) bool {
	for _, photo := range entry.Photos {
		if photo == filename {
			return true
		}
	}
	return false
}

func DayKey(day int) string {
	return strconv.Itoa(day)
}

func IsProtocolDay(day int) bool {
	return day >= FirstProtocolDay && day <= LastProtocolDay
}
