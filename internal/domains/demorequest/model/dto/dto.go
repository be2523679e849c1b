package dto

import (
	"intake/internal/domains/demorequest/model"
	"intake/shared"
	"intake/shared/constant"
	gDto "intake/shared/dto"
	gModel "intake/shared/model"
	"intake/shared/timezone"

	"github.com/google/uuid"
)

// SubmitDemoRequestRequest carries a public intake submission. Server-side
// validation is a presence check; field shapes were already validated by the
// intake wizard.
type SubmitDemoRequestRequest struct {
	FirstName        string   `json:"firstName"               validate:"required,max=100"`
	LastName         string   `json:"lastName"                validate:"required,max=100"`
	Email            string   `json:"email"                   validate:"required,max=100"`
	Phone            string   `json:"phone"                   validate:"required,max=30"`
	Organization     string   `json:"organization"            validate:"required,max=200"`
	Title            string   `json:"title"                   validate:"required,max=100"`
	OrganizationType string   `json:"organizationType"        validate:"required,max=100"`
	Country          string   `json:"country"                 validate:"required,max=100"`
	Interests        []string `json:"interests"               validate:"required,min=1,max=4,dive,required"`
	Message          string   `json:"message,omitempty"       validate:"omitempty,max=2000"`
	DemoType         string   `json:"demoType"                validate:"required,max=100"`
	PreferredDate    string   `json:"preferredDate,omitempty" validate:"omitempty"`
	AttendeeCount    string   `json:"attendeeCount,omitempty" validate:"omitempty,max=20"`
}

func (c *SubmitDemoRequestRequest) ToModel(user string) model.DemoRequest {
	return model.DemoRequest{
		ID:               uuid.NewString(),
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Organization:     c.Organization,
		Title:            c.Title,
		OrganizationType: c.OrganizationType,
		Country:          c.Country,
		Interests:        c.Interests,
		Message:          optional(c.Message),
		DemoType:         c.DemoType,
		PreferredDate:    optional(c.PreferredDate),
		AttendeeCount:    optional(c.AttendeeCount),
		Status:           model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateDemoRequestRequest is the staff mutation surface: lifecycle status,
// the confirmed schedule timestamp, and internal notes.
type UpdateDemoRequestRequest struct {
	Status      string `db:"status"       json:"status"      validate:"omitempty,oneof=pending scheduled completed cancelled"`
	ScheduledAt string `db:"scheduled_at" json:"scheduledAt" validate:"omitempty"`
	Notes       string `db:"notes"        json:"notes"       validate:"omitempty,max=5000"`
}

type DemoRequestResponse struct {
	ID               string   `json:"id"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Organization     string   `json:"organization"`
	Title            string   `json:"title"`
	OrganizationType string   `json:"organizationType"`
	Country          string   `json:"country"`
	Interests        []string `json:"interests"`
	Message          string   `json:"message,omitempty"`
	DemoType         string   `json:"demoType"`
	PreferredDate    string   `json:"preferredDate,omitempty"`
	AttendeeCount    string   `json:"attendeeCount,omitempty"`
	Status           string   `json:"status"`
	ScheduledAt      string   `json:"scheduledAt,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *DemoRequestResponse) FromModel(mod model.DemoRequest) {
	r.ID = mod.ID
	r.FirstName = mod.FirstName
	r.LastName = mod.LastName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Organization = mod.Organization
	r.Title = mod.Title
	r.OrganizationType = mod.OrganizationType
	r.Country = mod.Country
	r.Interests = mod.Interests
	r.DemoType = mod.DemoType
	r.Status = mod.Status

	if mod.Message != nil {
		r.Message = *mod.Message
	}

	if mod.PreferredDate != nil {
		r.PreferredDate = *mod.PreferredDate
	}

	if mod.AttendeeCount != nil {
		r.AttendeeCount = *mod.AttendeeCount
	}

	if mod.ScheduledAt != nil {
		r.ScheduledAt = timezone.Format(*mod.ScheduledAt, constant.DateFormat)
	}

	if mod.Notes != nil {
		r.Notes = *mod.Notes
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetDemoRequestsResponse struct {
	DemoRequests []DemoRequestResponse `json:"demoRequests"`
	TotalPage    int                   `json:"totalPage"`
	TotalData    int                   `json:"totalData"`
}

func (r *GetDemoRequestsResponse) FromModels(models []model.DemoRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.DemoRequests = make([]DemoRequestResponse, len(models))
	for i, mod := range models {
		r.DemoRequests[i].FromModel(mod)
	}
}

type DemoRequestStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

func (r *DemoRequestStatsResponse) FromCounts(counts map[string]int) {
	r.Pending = counts[model.StatusPending]
	r.Scheduled = counts[model.StatusScheduled]
	r.Completed = counts[model.StatusCompleted]
	r.Cancelled = counts[model.StatusCancelled]
	r.Total = r.Pending + r.Scheduled + r.Completed + r.Cancelled
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
