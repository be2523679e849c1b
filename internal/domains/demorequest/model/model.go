package model

import (
	"time"

	"intake/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "demo_requests"
	EntityName = "demo_request"

	FieldID               = "id"
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldOrganization     = "organization"
	FieldTitle            = "title"
	FieldOrganizationType = "organization_type"
	FieldCountry          = "country"
	FieldInterests        = "interests"
	FieldMessage          = "message"
	FieldDemoType         = "demo_type"
	FieldPreferredDate    = "preferred_date"
	FieldAttendeeCount    = "attendee_count"
	FieldStatus           = "status"
	FieldScheduledAt      = "scheduled_at"
	FieldNotes            = "notes"
)

const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// MaxInterests bounds how many interest tags a single request may carry.
const MaxInterests = 4

type DemoRequest struct {
	ID               string         `db:"id"`
	FirstName        string         `db:"first_name"`
	LastName         string         `db:"last_name"`
	Email            string         `db:"email"`
	Phone            string         `db:"phone"`
	Organization     string         `db:"organization"`
	Title            string         `db:"title"`
	OrganizationType string         `db:"organization_type"`
	Country          string         `db:"country"`
	Interests        pq.StringArray `db:"interests"`
	Message          *string        `db:"message"`
	DemoType         string         `db:"demo_type"`
	PreferredDate    *string        `db:"preferred_date"`
	AttendeeCount    *string        `db:"attendee_count"`
	Status           string         `db:"status"`
	ScheduledAt      *time.Time     `db:"scheduled_at"`
	Notes            *string        `db:"notes"`
	model.Metadata
}
