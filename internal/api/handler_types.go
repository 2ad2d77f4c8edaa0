package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

type Handler struct {
	journal   *services.JournalService
	progress  *services.ProgressService
	exports   *services.ExportService
	location  *time.Location
	clientDir string
	validate  *validator.Validate
	now       func() time.Time
}

func NewHandler(journal *services.JournalService, location *time.Location, clientDir string) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		journal:   journal,
		progress:  services.NewProgressService(journal, location),
		exports:   services.NewExportService(journal, location),
		location:  location,
		clientDir: clientDir,
		validate:  newValidator(),
		now:       time.Now,
	}
}
