package wizard

import (
	"regexp"
	"slices"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// Step numbers the four pages of the intake form.
type Step int

const (
	StepContact Step = iota + 1
	StepOrganization
	StepScheduling
	StepSummary
)

const maxInterests = 4

var validate = val.New(val.WithRequiredStructEnabled())

// Loose on purpose: the server only checks presence, and sales follows up by
// hand anyway. 7-20 characters, digits with the usual separators.
var phoneShape = regexp.MustCompile(`^\+?[0-9(][0-9\s\-().]{5,18}[0-9]$`)

var stepFields = map[Step][]Field{
	StepContact:      {FieldFirstName, FieldLastName, FieldEmail, FieldPhone},
	StepOrganization: {FieldOrganization, FieldTitle, FieldOrganizationType, FieldCountry, FieldInterests},
	StepScheduling:   {FieldDemoType},
	StepSummary:      {},
}

// StepFields returns the fields whose validity gates the given step.
func StepFields(step Step) []Field {
	return stepFields[step]
}

// ValidateField applies the rule for a single field against the draft and
// returns the inline message, or the empty string when the field is valid.
// Both validation timings (debounced error display and the immediate Next
// gating predicate) run through this one rule set.
func ValidateField(field Field, draft Draft, allowedDemoTypes []string) string {
	switch field {
	case FieldFirstName:
		if strings.TrimSpace(draft.FirstName) == "" {
			return "First name is required"
		}
	case FieldLastName:
		if strings.TrimSpace(draft.LastName) == "" {
			return "Last name is required"
		}
	case FieldEmail:
		if strings.TrimSpace(draft.Email) == "" {
			return "Email is required"
		}

		if err := validate.Var(draft.Email, "email"); err != nil {
			return "Please enter a valid email address"
		}
	case FieldPhone:
		if strings.TrimSpace(draft.Phone) == "" {
			return "Phone number is required"
		}

		if !phoneShape.MatchString(draft.Phone) {
			return "Please enter a valid phone number"
		}
	case FieldOrganization:
		if strings.TrimSpace(draft.Organization) == "" {
			return "Organization is required"
		}
	case FieldTitle:
		if strings.TrimSpace(draft.Title) == "" {
			return "Job title is required"
		}
	case FieldOrganizationType:
		if strings.TrimSpace(draft.OrganizationType) == "" {
			return "Organization type is required"
		}
	case FieldCountry:
		if strings.TrimSpace(draft.Country) == "" {
			return "Country is required"
		}
	case FieldInterests:
		if len(draft.Interests) == 0 {
			return "Select at least one area of interest"
		}

		if len(draft.Interests) > maxInterests {
			return "Select up to 4 areas of interest"
		}
	case FieldDemoType:
		if draft.DemoType == "" {
			return "Select a demo type"
		}

		if len(allowedDemoTypes) > 0 && !slices.Contains(allowedDemoTypes, draft.DemoType) {
			return "Select a demo type from the list"
		}
	}

	return ""
}

// ValidateStep recomputes the error map for one step of the draft.
func ValidateStep(step Step, draft Draft, allowedDemoTypes []string) FieldErrors {
	errs := FieldErrors{}

	for _, field := range stepFields[step] {
		if msg := ValidateField(field, draft, allowedDemoTypes); msg != "" {
			errs[field] = msg
		}
	}

	return errs
}

// StepValid is the un-debounced gating predicate behind the Next button. It
// may transiently disagree with the debounced error map; both evaluate the
// same rules.
func StepValid(step Step, draft Draft, allowedDemoTypes []string) bool {
	return len(ValidateStep(step, draft, allowedDemoTypes)) == 0
}

// ValidateAll re-runs every step's rules; the final submit guard.
func ValidateAll(draft Draft, allowedDemoTypes []string) FieldErrors {
	errs := FieldErrors{}

	for step := StepContact; step <= StepSummary; step++ {
		for field, msg := range ValidateStep(step, draft, allowedDemoTypes) {
			errs[field] = msg
		}
	}

	return errs
}
