package api

type startDateInput struct {
	Date string `json:"date" validate:"required,startdate"`
}
