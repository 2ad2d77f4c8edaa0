package services

import (
	"math"

	"github.com/terraincognita07/eczema-tracker/internal/models"
)

// ComplianceScore is the rounded percentage of defined diet checklist items
// marked done. Unknown ids are ignored; an empty checklist scores 0.
func ComplianceScore(checklist map[string]bool) int {
	if len(checklist) == 0 {
		return 0
	}

	items := models.DietChecklist()
	done := 0
	for _, item := range items {
		if checklist[item.ID] {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(items))))
}
