package wizard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake/internal/wizard"
)

type fakeConfigClient struct {
	interests   []wizard.InterestOption
	interestErr error
	demoTypes   []wizard.DemoTypeOption
	demoTypeErr error
	dates       []string
	dateErr     error
}

func (f *fakeConfigClient) Interests(context.Context) ([]wizard.InterestOption, error) {
	return f.interests, f.interestErr
}

func (f *fakeConfigClient) DemoTypes(context.Context) ([]wizard.DemoTypeOption, error) {
	return f.demoTypes, f.demoTypeErr
}

func (f *fakeConfigClient) AvailableDates(context.Context) ([]string, error) {
	return f.dates, f.dateErr
}

func TestLoadCatalog_UsesFetchedOptions(t *testing.T) {
	client := &fakeConfigClient{
		interests: []wizard.InterestOption{
			{ID: "surgical", Name: "Surgical planning"},
		},
		demoTypes: []wizard.DemoTypeOption{
			{ID: "executive", Name: "Executive Briefing", DurationMinutes: 30},
		},
		dates: []string{"2026-09-14", "2026-09-15"},
	}

	catalog, err := wizard.LoadCatalog(context.Background(), client)

	require.NoError(t, err)
	assert.Equal(t, client.interests, catalog.Interests)
	assert.Equal(t, client.demoTypes, catalog.DemoTypes)
	assert.Equal(t, client.dates, catalog.AvailableDates)
	assert.Equal(t, []string{"Executive Briefing"}, catalog.DemoTypeNames())
}

func TestLoadCatalog_FallsBackPerCategory(t *testing.T) {
	client := &fakeConfigClient{
		interestErr: errors.New("interests endpoint down"),
		demoTypes: []wizard.DemoTypeOption{
			{ID: "executive", Name: "Executive Briefing", DurationMinutes: 30},
		},
	}

	catalog, err := wizard.LoadCatalog(context.Background(), client)

	// One failed endpoint falls back without blanking the other list.
	assert.Error(t, err)
	assert.NotEmpty(t, catalog.Interests)
	assert.Equal(t, client.demoTypes, catalog.DemoTypes)
}

func TestLoadCatalog_CalendarFailureLeavesDatesEmpty(t *testing.T) {
	client := &fakeConfigClient{dateErr: errors.New("calendar endpoint down")}

	catalog, err := wizard.LoadCatalog(context.Background(), client)

	assert.Error(t, err)
	assert.Empty(t, catalog.AvailableDates)
	assert.NotEmpty(t, catalog.Interests)
}

func TestLoadCatalog_AllEndpointsDown(t *testing.T) {
	client := &fakeConfigClient{
		interestErr: errors.New("down"),
		demoTypeErr: errors.New("down"),
	}

	catalog, err := wizard.LoadCatalog(context.Background(), client)

	assert.Error(t, err)
	assert.NotEmpty(t, catalog.Interests)
	assert.NotEmpty(t, catalog.DemoTypes)
	assert.Contains(t, catalog.DemoTypeNames(), "Virtual Demo")
}

func TestLoadCatalog_NilClient(t *testing.T) {
	catalog, err := wizard.LoadCatalog(context.Background(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, catalog.Interests)
	assert.NotEmpty(t, catalog.DemoTypes)
}

func TestLoadCatalog_EmptyListsKeepDefaults(t *testing.T) {
	catalog, err := wizard.LoadCatalog(context.Background(), &fakeConfigClient{})

	require.NoError(t, err)
	assert.NotEmpty(t, catalog.Interests)
	assert.NotEmpty(t, catalog.DemoTypes)
}
