package dto

import (
	"intake/internal/domains/calendar/model"
)

type CheckDateRequest struct {
	Date string `json:"date" validate:"required"`
}

type OverrideDateRequest struct {
	Date        string  `json:"date"         validate:"required"`
	IsAvailable *bool   `json:"isAvailable"  validate:"required"`
	MaxBookings int     `json:"maxBookings"  validate:"omitempty,gte=0"`
	Reason      *string `json:"reason"       validate:"omitempty,max=255"`
}

type AvailabilityResponse struct {
	Date            string `json:"date"`
	IsAvailable     bool   `json:"isAvailable"`
	MaxBookings     int    `json:"maxBookings"`
	CurrentBookings int    `json:"currentBookings"`
	Reason          string `json:"reason,omitempty"`
}

func (r *AvailabilityResponse) FromModel(mod model.CalendarAvailability) {
	r.Date = mod.Date
	r.IsAvailable = mod.IsAvailable
	r.MaxBookings = mod.MaxBookings
	r.CurrentBookings = mod.CurrentBookings

	if mod.Reason != nil {
		r.Reason = *mod.Reason
	}
}

type GetCalendarResponse struct {
	Dates []AvailabilityResponse `json:"dates"`
}

func (r *GetCalendarResponse) FromModels(models []model.CalendarAvailability) {
	r.Dates = make([]AvailabilityResponse, len(models))
	for i, mod := range models {
		r.Dates[i].FromModel(mod)
	}
}
