package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/eczema-tracker/internal/models"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

// newValidator registers "startdate" (a calendar date or an RFC 3339
// timestamp) and "timestamp" (RFC 3339 only).
func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("startdate", func(fl validator.FieldLevel) bool {
		_, ok := services.ParseStartDate(fl.Field().String(), time.UTC)
		return ok
	})
	_ = validate.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseTimestamp(fl.Field().String())
		return ok
	})
	return validate
}
