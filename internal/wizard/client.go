package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"intake/internal/domains/demorequest/model/dto"
)

const clientTimeout = 10 * time.Second

// Client talks to the intake backend over its public JSON endpoints. It
// implements both Submitter and ConfigClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL, e.g.
// "https://api.example.com". The trailing slash is optional.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: clientTimeout}
	}

	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	return &Client{baseURL: baseURL, http: httpClient}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Submit posts the draft to the demo request endpoint.
func (c *Client) Submit(ctx context.Context, draft Draft) error {
	payload := dto.SubmitDemoRequestRequest{
		FirstName:        draft.FirstName,
		LastName:         draft.LastName,
		Email:            draft.Email,
		Phone:            draft.Phone,
		Organization:     draft.Organization,
		Title:            draft.Title,
		OrganizationType: draft.OrganizationType,
		Country:          draft.Country,
		Interests:        draft.Interests,
		Message:          draft.Message,
		DemoType:         draft.DemoType,
		PreferredDate:    draft.PreferredDate,
		AttendeeCount:    draft.AttendeeCount,
	}

	_, err := c.do(ctx, http.MethodPost, "/v1/demo/request", payload)

	return err
}

type interestPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type interestsPayload struct {
	Interests []interestPayload `json:"interests"`
}

// Interests fetches the interest catalog for the organization step.
func (c *Client) Interests(ctx context.Context) ([]InterestOption, error) {
	data, err := c.do(ctx, http.MethodGet, "/v1/demo/config/interests", nil)
	if err != nil {
		return nil, err
	}

	var body interestsPayload
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to decode interests response: %w", err)
	}

	options := make([]InterestOption, len(body.Interests))
	for i, interest := range body.Interests {
		options[i] = InterestOption{ID: interest.ID, Name: interest.Name}
	}

	return options, nil
}

type demoTypePayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

type demoTypesPayload struct {
	DemoTypes []demoTypePayload `json:"demoTypes"`
}

// DemoTypes fetches the demo modality catalog for the scheduling step.
func (c *Client) DemoTypes(ctx context.Context) ([]DemoTypeOption, error) {
	data, err := c.do(ctx, http.MethodGet, "/v1/demo/config/types", nil)
	if err != nil {
		return nil, err
	}

	var body demoTypesPayload
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to decode demo types response: %w", err)
	}

	options := make([]DemoTypeOption, len(body.DemoTypes))
	for i, demoType := range body.DemoTypes {
		options[i] = DemoTypeOption{
			ID:              demoType.ID,
			Name:            demoType.Name,
			Description:     demoType.Description,
			DurationMinutes: demoType.Duration,
		}
	}

	return options, nil
}

type availabilityPayload struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
}

type calendarPayload struct {
	Dates []availabilityPayload `json:"dates"`
}

// AvailableDates fetches the bookable dates for the scheduling step's date
// picker. Only dates that still accept bookings are returned.
func (c *Client) AvailableDates(ctx context.Context) ([]string, error) {
	data, err := c.do(ctx, http.MethodGet, "/v1/demo/config/calendar", nil)
	if err != nil {
		return nil, err
	}

	var body calendarPayload
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to decode calendar response: %w", err)
	}

	dates := make([]string, 0, len(body.Dates))
	for _, day := range body.Dates {
		if day.IsAvailable {
			dates = append(dates, day.Date)
		}
	}

	return dates, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}

		return nil, fmt.Errorf("%s %s: %s", method, path, msg)
	}

	return env.Data, nil
}
