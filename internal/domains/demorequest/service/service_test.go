package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"intake/config"
	"intake/internal/domains/demorequest/model"
	"intake/internal/domains/demorequest/service"
	gDto "intake/shared/dto"
	gModel "intake/shared/model"
	"intake/shared/timezone"

	otelMocks "intake/infras/otel/mocks"
	calendarSvcMocks "intake/internal/domains/calendar/service/mocks"
	demoMocks "intake/internal/domains/demorequest/mocks"
	demoDto "intake/internal/domains/demorequest/model/dto"
	eventMocks "intake/internal/events/mocks"
	cacheMocks "intake/shared/cache/mocks"
)

var errCacheMiss = errors.New("cache miss")

type testHarness struct {
	repo      *demoMocks.MockDemoRequest
	calendar  *calendarSvcMocks.MockCalendar
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	svc       service.DemoRequest
}

func newTestHarness(t *testing.T) testHarness {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	h := testHarness{
		repo:      demoMocks.NewMockDemoRequest(ctrl),
		calendar:  calendarSvcMocks.NewMockCalendar(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}
	h.svc = service.New(h.repo, h.calendar, cfg, h.cache, h.publisher, otelMocks.NewOtel())

	return h
}

// allowAsyncWork registers the fire-and-forget expectations every write path
// triggers: event publishing and cache invalidation run in goroutines after
// the service method has already returned.
func (h testHarness) allowAsyncWork() {
	h.publisher.EXPECT().DemoRequestCreated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.publisher.EXPECT().DemoRequestUpdated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// settle gives the write path's goroutine a moment to run before the mock
// controller is finished.
func settle() {
	time.Sleep(20 * time.Millisecond)
}

func validSubmitRequest() demoDto.SubmitDemoRequestRequest {
	return demoDto.SubmitDemoRequestRequest{
		FirstName:        "Sarah",
		LastName:         "Chen",
		Email:            "sarah.chen@mercy.org",
		Phone:            "+1 555 0123",
		Organization:     "Mercy General Hospital",
		Title:            "Director of Radiology",
		OrganizationType: "Hospital",
		Country:          "United States",
		Interests:        []string{"Medical imaging workflows", "EMR integration"},
		DemoType:         "Virtual Demo",
	}
}

func storedDemoRequest(id string) model.DemoRequest {
	return model.DemoRequest{
		ID:               id,
		FirstName:        "Sarah",
		LastName:         "Chen",
		Email:            "sarah.chen@mercy.org",
		Phone:            "+1 555 0123",
		Organization:     "Mercy General Hospital",
		Title:            "Director of Radiology",
		OrganizationType: "Hospital",
		Country:          "United States",
		Interests:        []string{"Medical imaging workflows"},
		DemoType:         "Virtual Demo",
		Status:           model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestDemoRequestService_Submit(t *testing.T) {
	t.Run("without preferred date skips the calendar", func(t *testing.T) {
		h := newTestHarness(t)
		h.allowAsyncWork()

		h.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req model.DemoRequest) error {
				assert.Equal(t, model.StatusPending, req.Status)
				assert.Nil(t, req.PreferredDate)

				return nil
			})

		res, err := h.svc.Submit(context.Background(), validSubmitRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, model.StatusPending, res.Status)
		settle()
	})

	t.Run("with preferred date reserves capacity first", func(t *testing.T) {
		h := newTestHarness(t)
		h.allowAsyncWork()

		req := validSubmitRequest()
		req.PreferredDate = "2026-09-15"

		gomock.InOrder(
			h.calendar.EXPECT().
				Reserve(gomock.Any(), "2026-09-15").
				Return(nil),
			h.repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				Return(nil),
		)

		res, err := h.svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "2026-09-15", res.PreferredDate)
		settle()
	})

	t.Run("calendar rejection blocks the insert", func(t *testing.T) {
		h := newTestHarness(t)

		req := validSubmitRequest()
		req.PreferredDate = "2026-09-15"

		h.calendar.EXPECT().
			Reserve(gomock.Any(), "2026-09-15").
			Return(errors.New("maximum bookings reached for the selected date"))

		_, err := h.svc.Submit(context.Background(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "maximum bookings reached")
	})

	t.Run("insert error", func(t *testing.T) {
		h := newTestHarness(t)

		h.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := h.svc.Submit(context.Background(), validSubmitRequest())

		assert.Error(t, err)
	})
}

func TestDemoRequestService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		h := newTestHarness(t)

		h.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				cached := value.(*demoDto.GetDemoRequestsResponse)
				cached.DemoRequests = []demoDto.DemoRequestResponse{{ID: "cached-id"}}

				return nil
			})

		res, err := h.svc.GetAll(context.Background(), params, filter)

		assert.NoError(t, err)
		assert.Len(t, res.DemoRequests, 1)
		assert.Equal(t, "cached-id", res.DemoRequests[0].ID)
	})

	t.Run("cache miss reads through and repopulates", func(t *testing.T) {
		h := newTestHarness(t)
		h.allowAsyncWork()

		h.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss).
			Times(2)

		h.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		h.repo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return([]model.DemoRequest{storedDemoRequest("demo-id-1")}, nil)

		res, err := h.svc.GetAll(context.Background(), params, filter)

		assert.NoError(t, err)
		assert.Len(t, res.DemoRequests, 1)
		assert.Equal(t, 1, res.TotalData)
		settle()
	})

	t.Run("repository error propagated", func(t *testing.T) {
		h := newTestHarness(t)
		h.allowAsyncWork()

		h.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss).
			Times(2)

		h.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		h.repo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := h.svc.GetAll(context.Background(), params, filter)

		assert.Error(t, err)
		settle()
	})
}

func TestDemoRequestService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := newTestHarness(t)
		h.allowAsyncWork()

		h.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)

		h.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedDemoRequest("demo-id-1"), nil)

		res, err := h.svc.Get(context.Background(), "demo-id-1")

		assert.NoError(t, err)
		assert.Equal(t, "demo-id-1", res.ID)
		settle()
	})

	t.Run("not found", func(t *testing.T) {
		h := newTestHarness(t)

		h.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)

		h.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.DemoRequest{}, nil)

		_, err := h.svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
	})
}

func TestDemoRequestService_Update(t *testing.T) {
	req := demoDto.UpdateDemoRequestRequest{Status: model.StatusScheduled}

	t.Run("successful update publishes and invalidates", func(t *testing.T) {
		h := newTestHarness(t)
		h.allowAsyncWork()

		updated := storedDemoRequest("demo-id-1")
		updated.Status = model.StatusScheduled

		h.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		h.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusScheduled, fields["status"])

				return nil
			})

		h.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(updated, nil).
			AnyTimes()

		err := h.svc.Update(context.Background(), req, "demo-id-1")

		assert.NoError(t, err)
		settle()
	})

	t.Run("empty update rejected", func(t *testing.T) {
		h := newTestHarness(t)

		err := h.svc.Update(context.Background(), demoDto.UpdateDemoRequestRequest{}, "demo-id-1")

		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		h := newTestHarness(t)

		h.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := h.svc.Update(context.Background(), req, "missing-id")

		assert.Error(t, err)
	})
}

func TestDemoRequestService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		h := newTestHarness(t)
		h.allowAsyncWork()

		h.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		h.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := h.svc.Delete(context.Background(), "demo-id-1")

		assert.NoError(t, err)
		settle()
	})

	t.Run("not found", func(t *testing.T) {
		h := newTestHarness(t)

		h.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := h.svc.Delete(context.Background(), "missing-id")

		assert.Error(t, err)
	})
}

func TestDemoRequestService_Stats(t *testing.T) {
	t.Run("totals aggregated across statuses", func(t *testing.T) {
		h := newTestHarness(t)
		h.allowAsyncWork()

		h.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)

		h.repo.EXPECT().
			CountByStatus(gomock.Any()).
			Return(map[string]int{
				model.StatusPending:   3,
				model.StatusScheduled: 2,
				model.StatusCompleted: 4,
				model.StatusCancelled: 1,
			}, nil)

		res, err := h.svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 10, res.Total)
		assert.Equal(t, 3, res.Pending)
		assert.Equal(t, 2, res.Scheduled)
		settle()
	})

	t.Run("count error propagated", func(t *testing.T) {
		h := newTestHarness(t)

		h.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)

		h.repo.EXPECT().
			CountByStatus(gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := h.svc.Stats(context.Background())

		assert.Error(t, err)
	})
}
