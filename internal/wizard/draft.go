package wizard

// Field identifies one control of the intake form. The values double as the
// JSON field names of the submission payload.
type Field string

const (
	FieldFirstName        Field = "firstName"
	FieldLastName         Field = "lastName"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
	FieldOrganization     Field = "organization"
	FieldTitle            Field = "title"
	FieldOrganizationType Field = "organizationType"
	FieldCountry          Field = "country"
	FieldInterests        Field = "interests"
	FieldMessage          Field = "message"
	FieldDemoType         Field = "demoType"
	FieldPreferredDate    Field = "preferredDate"
	FieldAttendeeCount    Field = "attendeeCount"
	FieldAgreeToTerms     Field = "agreeToTerms"
)

// FieldErrors maps a field to its current inline validation message.
type FieldErrors map[Field]string

// Draft is the in-progress form state. It is owned by a single Machine for
// the lifetime of one wizard open/close and is never persisted.
type Draft struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Organization     string
	Title            string
	OrganizationType string
	Country          string
	Interests        []string
	Message          string
	DemoType         string
	PreferredDate    string
	AttendeeCount    string
	AgreeToTerms     bool
}

func (d *Draft) set(field Field, value string) {
	switch field {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldOrganization:
		d.Organization = value
	case FieldTitle:
		d.Title = value
	case FieldOrganizationType:
		d.OrganizationType = value
	case FieldCountry:
		d.Country = value
	case FieldMessage:
		d.Message = value
	case FieldDemoType:
		d.DemoType = value
	case FieldPreferredDate:
		d.PreferredDate = value
	case FieldAttendeeCount:
		d.AttendeeCount = value
	}
}

func (d Draft) clone() Draft {
	interests := make([]string, len(d.Interests))
	copy(interests, d.Interests)
	d.Interests = interests

	return d
}
