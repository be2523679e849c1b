package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"intake/internal/wizard"
)

func validDraft() wizard.Draft {
	return wizard.Draft{
		FirstName:        "Dana",
		LastName:         "Whitfield",
		Email:            "dana.whitfield@example.org",
		Phone:            "+1 415 555 0142",
		Organization:     "Lakeside Medical Center",
		Title:            "Director of Radiology",
		OrganizationType: "hospital",
		Country:          "United States",
		Interests:        []string{"AI diagnostic features"},
		DemoType:         "Virtual Demo",
		AgreeToTerms:     true,
	}
}

func TestValidateField_Contact(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*wizard.Draft)
		field   wizard.Field
		wantErr bool
	}{
		{
			name:    "valid draft has no contact errors",
			mutate:  func(*wizard.Draft) {},
			field:   wizard.FieldFirstName,
			wantErr: false,
		},
		{
			name:    "blank first name",
			mutate:  func(d *wizard.Draft) { d.FirstName = "   " },
			field:   wizard.FieldFirstName,
			wantErr: true,
		},
		{
			name:    "blank last name",
			mutate:  func(d *wizard.Draft) { d.LastName = "" },
			field:   wizard.FieldLastName,
			wantErr: true,
		},
		{
			name:    "missing email",
			mutate:  func(d *wizard.Draft) { d.Email = "" },
			field:   wizard.FieldEmail,
			wantErr: true,
		},
		{
			name:    "malformed email",
			mutate:  func(d *wizard.Draft) { d.Email = "not-an-email" },
			field:   wizard.FieldEmail,
			wantErr: true,
		},
		{
			name:    "phone too short",
			mutate:  func(d *wizard.Draft) { d.Phone = "12345" },
			field:   wizard.FieldPhone,
			wantErr: true,
		},
		{
			name:    "phone with separators",
			mutate:  func(d *wizard.Draft) { d.Phone = "(020) 7946-0958" },
			field:   wizard.FieldPhone,
			wantErr: false,
		},
		{
			name:    "phone with country code and parens",
			mutate:  func(d *wizard.Draft) { d.Phone = "+44 (20) 7946 0958" },
			field:   wizard.FieldPhone,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			msg := wizard.ValidateField(tt.field, draft, nil)

			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestValidateField_InterestBounds(t *testing.T) {
	tests := []struct {
		name      string
		interests []string
		wantErr   bool
	}{
		{
			name:      "no interests selected",
			interests: nil,
			wantErr:   true,
		},
		{
			name:      "one interest",
			interests: []string{"Patient monitoring"},
			wantErr:   false,
		},
		{
			name:      "four interests",
			interests: []string{"a", "b", "c", "d"},
			wantErr:   false,
		},
		{
			name:      "five interests",
			interests: []string{"a", "b", "c", "d", "e"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			draft.Interests = tt.interests

			msg := wizard.ValidateField(wizard.FieldInterests, draft, nil)

			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestValidateField_DemoTypeMembership(t *testing.T) {
	allowed := []string{"Virtual Demo", "On-site Demo"}

	draft := validDraft()
	assert.Empty(t, wizard.ValidateField(wizard.FieldDemoType, draft, allowed))

	draft.DemoType = "Holographic Demo"
	assert.NotEmpty(t, wizard.ValidateField(wizard.FieldDemoType, draft, allowed))

	draft.DemoType = ""
	assert.NotEmpty(t, wizard.ValidateField(wizard.FieldDemoType, draft, nil))
}

func TestStepValid(t *testing.T) {
	draft := validDraft()

	for step := wizard.StepContact; step <= wizard.StepSummary; step++ {
		assert.True(t, wizard.StepValid(step, draft, nil), "step %d should be valid", step)
	}

	draft.Email = "bad"
	assert.False(t, wizard.StepValid(wizard.StepContact, draft, nil))
	// Other steps are unaffected by a contact field.
	assert.True(t, wizard.StepValid(wizard.StepOrganization, draft, nil))
}

func TestValidateStep_CollectsAllStepErrors(t *testing.T) {
	draft := wizard.Draft{}

	errs := wizard.ValidateStep(wizard.StepContact, draft, nil)

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, wizard.FieldFirstName)
	assert.Contains(t, errs, wizard.FieldLastName)
	assert.Contains(t, errs, wizard.FieldEmail)
	assert.Contains(t, errs, wizard.FieldPhone)
}

func TestValidateAll(t *testing.T) {
	assert.Empty(t, wizard.ValidateAll(validDraft(), nil))

	draft := validDraft()
	draft.Email = "bad"
	draft.Interests = nil

	errs := wizard.ValidateAll(draft, nil)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, wizard.FieldEmail)
	assert.Contains(t, errs, wizard.FieldInterests)
}
