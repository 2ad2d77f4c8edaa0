package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/eczema-tracker/internal/models"
)

const (
	previewSymptomLimit = 3
	previewPhotoLimit   = 3
	previewNotesRunes   = 80
)

type DocumentReader interface {
	LoadDocument() models.Document
}

type TrendPoint struct {
	Day     int  `json:"day"`
	Value   int  `json:"value"`
	HasData bool `json:"hasData"`
}

type SymptomFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DaySummary struct {
	Day            int      `json:"day"`
	Date           string   `json:"date,omitempty"`
	ItchLevel      *int     `json:"itchLevel"`
	OverallFeeling *int     `json:"overallFeeling"`
	Compliance     int      `json:"compliance"`
	Symptoms       []string `json:"symptoms"`
	NotesPreview   string   `json:"notesPreview"`
	Photos         []string `json:"photos"`
	PhotoCount     int      `json:"photoCount"`
	SavedAt        *string  `json:"savedAt"`
}

type Progress struct {
	StartDate         *string            `json:"startDate"`
	CurrentDay        int                `json:"currentDay"`
	Protocol          models.ProtocolDay `json:"protocol"`
	HoursOnProtocol   int                `json:"hoursOnProtocol"`
	DaysOnProtocol    int                `json:"daysOnProtocol"`
	CompletedDays     int                `json:"completedDays"`
	TotalDays         int                `json:"totalDays"`
	ItchTrend         []TrendPoint       `json:"itchTrend"`
	FeelingTrend      []TrendPoint       `json:"feelingTrend"`
	AverageItch       *float64           `json:"averageItch"`
	AverageFeeling    *float64           `json:"averageFeeling"`
	AverageCompliance *float64           `json:"averageCompliance"`
	SymptomFrequency  []SymptomFrequency `json:"symptomFrequency"`
	Entries           []DaySummary       `json:"entries"`
}

type ProgressService struct {
	documents DocumentReader
	location  *time.Location
}

func NewProgressService(documents DocumentReader, location *time.Location) *ProgressService {
	if location == nil {
		location = time.Local
	}
	return &ProgressService{documents: documents, location: location}
}

func (service *ProgressService) Build(now time.Time) Progress {
	return BuildProgress(service.documents.LoadDocument(), now, service.location)
}

// CompletionCount counts entries that carry a save timestamp.
func CompletionCount(doc models.Document) int {
	count := 0
	for _, entry := range doc.Days {
		if entry.Saved() {
			count++
		}
	}
	return count
}

func BuildProgress(doc models.Document, now time.Time, location *time.Location) Progress {
	currentDay := ProtocolDayFor(doc.StartDate, now, location)
	hours := HoursOnProtocol(doc.StartDate, now, location)

	progress := Progress{
		StartDate:        doc.StartDate,
		CurrentDay:       currentDay,
		Protocol:         ProtocolInfoFor(currentDay),
		HoursOnProtocol:  hours,
		DaysOnProtocol:   hours / 24,
		CompletedDays:    CompletionCount(doc),
		TotalDays:        models.LastProtocolDay,
		ItchTrend:        make([]TrendPoint, 0, models.LastProtocolDay),
		FeelingTrend:     make([]TrendPoint, 0, models.LastProtocolDay),
		SymptomFrequency: []SymptomFrequency{},
		Entries:          []DaySummary{},
	}

	var itch, feeling, compliance average
	symptomCounts := make(map[string]int)

	for day := models.FirstProtocolDay; day <= models.LastProtocolDay; day++ {
		entry, found := doc.Days[models.DayKey(day)]
		saved := found && entry.Saved()

		progress.ItchTrend = append(progress.ItchTrend, trendPoint(day, entry.ItchLevel, saved))
		progress.FeelingTrend = append(progress.FeelingTrend, trendPoint(day, entry.OverallFeeling, saved))
		if !saved {
			continue
		}

		score := ComplianceScore(entry.DietChecklist)
		itch.addOptional(entry.ItchLevel)
		feeling.addOptional(entry.OverallFeeling)
		compliance.add(float64(score))
		for _, symptom := range uniqueTrimmed(entry.Symptoms) {
			symptomCounts[symptom]++
		}

		progress.Entries = append(progress.Entries, DaySummary{
			Day:            day,
			Date:           ProtocolDate(doc.StartDate, day, location),
			ItchLevel:      entry.ItchLevel,
			OverallFeeling: entry.OverallFeeling,
			Compliance:     score,
			Symptoms:       firstN(entry.Symptoms, previewSymptomLimit),
			NotesPreview:   truncateRunes(entry.Notes, previewNotesRunes),
			Photos:         firstN(entry.Photos, previewPhotoLimit),
			PhotoCount:     len(entry.Photos),
			SavedAt:        entry.Timestamp,
		})
	}

	progress.AverageItch = itch.value()
	progress.AverageFeeling = feeling.value()
	progress.AverageCompliance = compliance.value()
	progress.SymptomFrequency = sortSymptomFrequencies(symptomCounts)
	return progress
}

func trendPoint(day int, value *int, saved bool) TrendPoint {
	point := TrendPoint{Day: day}
	if !saved {
		return point
	}
	point.HasData = true
	if value != nil {
		point.Value = *value
	}
	return point
}

type average struct {
	sum   float64
	count int
}

func (a *average) add(value float64) {
	a.sum += value
	a.count++
}

func (a *average) addOptional(value *int) {
	if value != nil {
		a.add(float64(*value))
	}
}

// value is rounded to one decimal; nil when nothing was recorded.
func (a *average) value() *float64 {
	if a.count == 0 {
		return nil
	}
	rounded := math.Round(a.sum/float64(a.count)*10) / 10
	return &rounded
}

func sortSymptomFrequencies(counts map[string]int) []SymptomFrequency {
	frequencies := make([]SymptomFrequency, 0, len(counts))
	for name, count := range counts {
		frequencies = append(frequencies, SymptomFrequency{Name: name, Count: count})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count == frequencies[j].Count {
			return frequencies[i].Name < frequencies[j].Name
		}
		return frequencies[i].Count > frequencies[j].Count
	})
	return frequencies
}

func uniqueTrimmed(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		unique = append(unique, trimmed)
	}
	return unique
}

func firstN(values []string, limit int) []string {
	if len(values) <= limit {
		return append([]string{}, values...)
	}
	return append([]string{}, values[:limit]...)
}

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit]) + "..."
}
