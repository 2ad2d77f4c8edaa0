package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/eczema-tracker/internal/models"
)

var ExportCSVHeaders = []string{
	"Day",
	"Date",
	"Saved at",
	"Itch level",
	"Overall feeling",
	"Compliance %",
	"Symptoms",
	"Body areas",
	"Suhoor",
	"Iftar",
	"Notes",
	"Photos",
}

type ExportEntry struct {
	Day            int             `json:"day"`
	Date           string          `json:"date"`
	SavedAt        string          `json:"saved_at"`
	ItchLevel      *int            `json:"itch_level"`
	OverallFeeling *int            `json:"overall_feeling"`
	Compliance     int             `json:"compliance"`
	Symptoms       []string        `json:"symptoms"`
	BodyAreas      map[string]int  `json:"body_areas"`
	DietChecklist  map[string]bool `json:"diet_checklist"`
	SuhoorMeal     string          `json:"suhoor_meal"`
	IftarMeal      string          `json:"iftar_meal"`
	Notes          string          `json:"notes"`
	Photos         []string        `json:"photos"`
}

type ExportPayload struct {
	ExportedAt string        `json:"exported_at"`
	StartDate  *string       `json:"start_date"`
	Entries    []ExportEntry `json:"entries"`
}

type ExportService struct {
	documents DocumentReader
	location  *time.Location
}

func NewExportService(documents DocumentReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.Local
	}
	return &ExportService{documents: documents, location: location}
}

func (service *ExportService) BuildPayload(now time.Time) ExportPayload {
	doc := service.documents.LoadDocument()
	return ExportPayload{
		ExportedAt: now.In(service.location).Format(time.RFC3339),
		StartDate:  doc.StartDate,
		Entries:    BuildExportEntries(doc, service.location),
	}
}

// BuildExportEntries lists saved protocol days in day order.
func BuildExportEntries(doc models.Document, location *time.Location) []ExportEntry {
	days := make([]int, 0, len(doc.Days))
	for key, entry := range doc.Days {
		day, err := strconv.Atoi(key)
		if err != nil || !models.IsProtocolDay(day) || !entry.Saved() {
			continue
		}
		days = append(days, day)
	}
	sort.Ints(days)

	entries := make([]ExportEntry, 0, len(days))
	for _, day := range days {
		entry := doc.Days[models.DayKey(day)]
		entries = append(entries, ExportEntry{
			Day:            day,
			Date:           ProtocolDate(doc.StartDate, day, location),
			SavedAt:        exportSavedAt(entry, location),
			ItchLevel:      entry.ItchLevel,
			OverallFeeling: entry.OverallFeeling,
			Compliance:     ComplianceScore(entry.DietChecklist),
			Symptoms:       nonNilStrings(entry.Symptoms),
			BodyAreas:      nonNilIntMap(entry.BodyAreas),
			DietChecklist:  nonNilBoolMap(entry.DietChecklist),
			SuhoorMeal:     entry.SuhoorMeal,
			IftarMeal:      entry.IftarMeal,
			Notes:          entry.Notes,
			Photos:         nonNilStrings(entry.Photos),
		})
	}
	return entries
}

func (entry ExportEntry) CSVRecord() []string {
	return []string{
		strconv.Itoa(entry.Day),
		entry.Date,
		entry.SavedAt,
		optionalIntString(entry.ItchLevel),
		optionalIntString(entry.OverallFeeling),
		strconv.Itoa(entry.Compliance),
		strings.Join(entry.Symptoms, "; "),
		formatBodyAreas(entry.BodyAreas),
		entry.SuhoorMeal,
		entry.IftarMeal,
		entry.Notes,
		strings.Join(entry.Photos, "; "),
	}
}

func WriteExportCSV(w io.Writer, entries []ExportEntry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write(entry.CSVRecord()); err != nil {
			return fmt.Errorf("write csv row for day %d: %w", entry.Day, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func EncodeExportCSV(entries []ExportEntry) ([]byte, error) {
	var output bytes.Buffer
	if err := WriteExportCSV(&output, entries); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func EncodeExportJSON(payload ExportPayload) ([]byte, error) {
	return json.MarshalIndent(payload, "", "  ")
}

func BuildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("eczema-tracker-export-%s.%s", now.Format(dateLayout), extension)
}

// formatBodyAreas renders areas in catalog order first, then any extra
// labels alphabetically.
// exportSavedAt renders the save time in location; an unparseable stamp is
// passed through as stored.
func exportSavedAt(entry models.DayEntry, location *time.Location) string {
	savedAt, ok := entry.SavedAt()
	if !ok {
		return *entry.Timestamp
	}
	return savedAt.In(location).Format(time.RFC3339)
}

func formatBodyAreas(areas map[string]int) string {
	parts := make([]string, 0, len(areas))
	seen := make(map[string]struct{}, len(areas))
	for _, area := range models.BodyAreas() {
		if severity, ok := areas[area]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", area, severity))
			seen[area] = struct{}{}
		}
	}

	extra := make([]string, 0)
	for area := range areas {
		if _, ok := seen[area]; !ok {
			extra = append(extra, area)
		}
	}
	sort.Strings(extra)
	for _, area := range extra {
		parts = append(parts, fmt.Sprintf("%s: %d", area, areas[area]))
	}
	return strings.Join(parts, "; ")
}

func optionalIntString(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilIntMap(values map[string]int) map[string]int {
	if values == nil {
		return map[string]int{}
	}
	return values
}

func nonNilBoolMap(values map[string]bool) map[string]bool {
	if values == nil {
		return map[string]bool{}
	}
	return values
}
