package model

import "intake/shared/model"

const (
	TableName  = "calendar_availability"
	EntityName = "calendar_availability"

	FieldID              = "id"
	FieldDate            = "date"
	FieldIsAvailable     = "is_available"
	FieldMaxBookings     = "max_bookings"
	FieldCurrentBookings = "current_bookings"
	FieldReason          = "reason"
)

const (
	// DateFormat is the canonical date-only key for availability rows.
	DateFormat = "2006-01-02"

	ReasonWeekend  = "weekends are not available for demos"
	ReasonPastDate = "past date"
)

type CalendarAvailability struct {
	ID              string  `db:"id"`
	Date            string  `db:"date"`
	IsAvailable     bool    `db:"is_available"`
	MaxBookings     int     `db:"max_bookings"`
	CurrentBookings int     `db:"current_bookings"`
	Reason          *string `db:"reason"`
	model.Metadata
}
