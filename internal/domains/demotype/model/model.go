package model

import "intake/shared/model"

const (
	TableName  = "demo_types"
	EntityName = "demo_type"

	FieldID              = "id"
	FieldName            = "name"
	FieldDurationMinutes = "duration_minutes"
	FieldDescription     = "description"
	FieldMaxAttendees    = "max_attendees"
	FieldActive          = "active"
)

type DemoType struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	DurationMinutes int     `db:"duration_minutes"`
	Description     *string `db:"description"`
	MaxAttendees    *int    `db:"max_attendees"`
	Active          bool    `db:"active"`
	model.Metadata
}
