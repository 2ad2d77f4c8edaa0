package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/eczema-tracker/internal/models"
)

func TestProtocolDayFor(t *testing.T) {
	location := time.UTC
	now := time.Date(2024, 3, 20, 15, 30, 0, 0, location)
	today := now.Format("2006-01-02")

	tests := []struct {
		name      string
		startDate *string
		want      int
	}{
		{name: "no start date", startDate: nil, want: 1},
		{name: "starts today", startDate: stringPtr(today), want: 1},
		{name: "started yesterday", startDate: stringPtr("2024-03-19"), want: 2},
		{name: "thirteen days ago", startDate: stringPtr("2024-03-07"), want: 14},
		{name: "thirty days ago clamps", startDate: stringPtr("2024-02-19"), want: 14},
		{name: "future start clamps", startDate: stringPtr("2024-03-25"), want: 1},
		{name: "rfc3339 start", startDate: stringPtr("2024-03-15T08:00:00Z"), want: 6},
		{name: "unparseable start", startDate: stringPtr("soon"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProtocolDayFor(tt.startDate, now, location); got != tt.want {
				t.Fatalf("ProtocolDayFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProtocolDayUsesLocalCalendarDays(t *testing.T) {
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	start := "2024-03-30"
	// Spans the DST switch on 2024-03-31; 00:30 local on April 1st is day 3.
	now := time.Date(2024, 3, 31, 22, 30, 0, 0, time.UTC)
	if got := ProtocolDayFor(&start, now, location); got != 3 {
		t.Fatalf("ProtocolDayFor() = %d, want 3", got)
	}
}

func TestProtocolInfoForFallsBackToDayOne(t *testing.T) {
	table := models.ProtocolDays()
	if len(table) != 14 {
		t.Fatalf("expected 14 protocol days, got %d", len(table))
	}

	for _, day := range []int{0, 15, -3} {
		if got := ProtocolInfoFor(day); got != table[0] {
			t.Fatalf("ProtocolInfoFor(%d) = %#v, want day 1", day, got)
		}
	}
	if got := ProtocolInfoFor(8); got.Day != 8 || got.Phase != models.PhaseHealing {
		t.Fatalf("ProtocolInfoFor(8) = %#v", got)
	}
}

func TestHoursOnProtocol(t *testing.T) {
	start := "2024-03-01"
	now := time.Date(2024, 3, 2, 5, 59, 0, 0, time.UTC)

	if got := HoursOnProtocol(&start, now, time.UTC); got != 29 {
		t.Fatalf("HoursOnProtocol() = %d, want 29", got)
	}
	if got := HoursOnProtocol(&start, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), time.UTC); got != 0 {
		t.Fatalf("HoursOnProtocol() before start = %d, want 0", got)
	}
	if got := HoursOnProtocol(nil, now, time.UTC); got != 0 {
		t.Fatalf("HoursOnProtocol(nil) = %d, want 0", got)
	}
}

func TestProtocolDate(t *testing.T) {
	start := "2024-02-28"
	if got := ProtocolDate(&start, 3, time.UTC); got != "2024-03-01" {
		t.Fatalf("ProtocolDate() = %q, want 2024-03-01", got)
	}
	if got := ProtocolDate(nil, 3, time.UTC); got != "" {
		t.Fatalf("ProtocolDate(nil) = %q, want empty", got)
	}
}
