package dto

import (
	"intake/internal/domains/interest/model"
	gModel "intake/shared/model"
	"intake/shared/timezone"

	"github.com/google/uuid"
)

type CreateInterestRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Category    string `json:"category"    validate:"required,max=100"`
}

func (c *CreateInterestRequest) ToModel(user string) model.Interest {
	var description *string
	if c.Description != "" {
		description = &c.Description
	}

	return model.Interest{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: description,
		Category:    c.Category,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateInterestRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	Category    string `db:"category"    json:"category"    validate:"omitempty,max=100"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type InterestResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

func (r *InterestResponse) FromModel(mod model.Interest) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Category = mod.Category

	if mod.Description != nil {
		r.Description = *mod.Description
	}
}

type GetInterestsResponse struct {
	Interests []InterestResponse `json:"interests"`
}

func (r *GetInterestsResponse) FromModels(models []model.Interest) {
	r.Interests = make([]InterestResponse, len(models))
	for i, mod := range models {
		r.Interests[i].FromModel(mod)
	}
}
