package wizard

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// InterestOption is one selectable area of interest.
type InterestOption struct {
	ID   string
	Name string
}

// DemoTypeOption is one demo modality with its scheduling metadata.
type DemoTypeOption struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
}

// Catalog holds the option lists the organization and scheduling steps render.
// AvailableDates is empty when the calendar endpoint is unreachable; the date
// picker then falls back to free entry and the server remains the authority.
type Catalog struct {
	Interests      []InterestOption
	DemoTypes      []DemoTypeOption
	AvailableDates []string
}

// ConfigClient fetches the wizard's option catalogs from the backend.
type ConfigClient interface {
	Interests(ctx context.Context) ([]InterestOption, error)
	DemoTypes(ctx context.Context) ([]DemoTypeOption, error)
	AvailableDates(ctx context.Context) ([]string, error)
}

func defaultInterests() []InterestOption {
	return []InterestOption{
		{ID: "imaging", Name: "Medical imaging workflows"},
		{ID: "ai-diagnostics", Name: "AI diagnostic features"},
		{ID: "patient-monitoring", Name: "Patient monitoring"},
		{ID: "emr-integration", Name: "EMR integration"},
		{ID: "telehealth", Name: "Telehealth capabilities"},
		{ID: "compliance", Name: "Compliance and data security"},
	}
}

func defaultDemoTypes() []DemoTypeOption {
	return []DemoTypeOption{
		{ID: "virtual", Name: "Virtual Demo", Description: "Live video walkthrough with a product specialist", DurationMinutes: 45},
		{ID: "onsite", Name: "On-site Demo", Description: "In-person demonstration at your facility", DurationMinutes: 90},
	}
}

// LoadCatalog fetches both option lists concurrently. Each list falls back to
// its built-in default independently, so one failed endpoint never blanks the
// other step. The error is never fatal; it is returned for logging only.
func LoadCatalog(ctx context.Context, client ConfigClient) (Catalog, error) {
	catalog := Catalog{
		Interests: defaultInterests(),
		DemoTypes: defaultDemoTypes(),
	}

	if client == nil {
		return catalog, nil
	}

	var (
		wg                                sync.WaitGroup
		interestErr, demoTypeErr, dateErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()

		interests, err := client.Interests(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("[LoadCatalog] falling back to built-in interests")
			interestErr = err

			return
		}

		if len(interests) > 0 {
			catalog.Interests = interests
		}
	}()

	go func() {
		defer wg.Done()

		demoTypes, err := client.DemoTypes(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("[LoadCatalog] falling back to built-in demo types")
			demoTypeErr = err

			return
		}

		if len(demoTypes) > 0 {
			catalog.DemoTypes = demoTypes
		}
	}()

	go func() {
		defer wg.Done()

		dates, err := client.AvailableDates(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("[LoadCatalog] continuing without available dates")
			dateErr = err

			return
		}

		catalog.AvailableDates = dates
	}()

	wg.Wait()

	if interestErr != nil {
		return catalog, interestErr
	}

	if demoTypeErr != nil {
		return catalog, demoTypeErr
	}

	return catalog, dateErr
}

// DemoTypeNames projects the catalog into the list Machine.SetDemoTypeOptions
// expects.
func (c Catalog) DemoTypeNames() []string {
	names := make([]string, 0, len(c.DemoTypes))
	for _, demoType := range c.DemoTypes {
		names = append(names, demoType.Name)
	}

	return names
}
