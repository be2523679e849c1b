package model

import "intake/shared/model"

const (
	TableName  = "demo_interests"
	EntityName = "interest"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldActive      = "active"
)

type Interest struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Category    string  `db:"category"`
	Active      bool    `db:"active"`
	model.Metadata
}
