package dto

import (
	"intake/internal/domains/demotype/model"
	gModel "intake/shared/model"
	"intake/shared/timezone"

	"github.com/google/uuid"
)

type CreateDemoTypeRequest struct {
	Name            string `json:"name"            validate:"required,max=100"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gte=15,lte=480"`
	Description     string `json:"description"     validate:"omitempty,max=500"`
	MaxAttendees    *int   `json:"maxAttendees"    validate:"omitempty,gte=1"`
}

func (c *CreateDemoTypeRequest) ToModel(user string) model.DemoType {
	var description *string
	if c.Description != "" {
		description = &c.Description
	}

	return model.DemoType{
		ID:              uuid.NewString(),
		Name:            c.Name,
		DurationMinutes: c.DurationMinutes,
		Description:     description,
		MaxAttendees:    c.MaxAttendees,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDemoTypeRequest struct {
	Name            string `db:"name"             json:"name"            validate:"omitempty,max=100"`
	DurationMinutes int    `db:"duration_minutes" json:"durationMinutes" validate:"omitempty,gte=15,lte=480"`
	Description     string `db:"description"      json:"description"     validate:"omitempty,max=500"`
	MaxAttendees    *int   `db:"max_attendees"    json:"maxAttendees"    validate:"omitempty,gte=1"`
	Active          *bool  `db:"active"           json:"active"          validate:"omitempty"`
}

type DemoTypeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Duration     int    `json:"duration"`
	Description  string `json:"description,omitempty"`
	MaxAttendees *int   `json:"maxAttendees,omitempty"`
}

func (r *DemoTypeResponse) FromModel(mod model.DemoType) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Duration = mod.DurationMinutes
	r.MaxAttendees = mod.MaxAttendees

	if mod.Description != nil {
		r.Description = *mod.Description
	}
}

type GetDemoTypesResponse struct {
	DemoTypes []DemoTypeResponse `json:"demoTypes"`
}

func (r *GetDemoTypesResponse) FromModels(models []model.DemoType) {
	r.DemoTypes = make([]DemoTypeResponse, len(models))
	for i, mod := range models {
		r.DemoTypes[i].FromModel(mod)
	}
}
