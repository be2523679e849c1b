package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"intake/config"
	"intake/internal/domains/calendar/model"
	"intake/internal/domains/calendar/service"
	gModel "intake/shared/model"
	"intake/shared/timezone"

	otelMocks "intake/infras/otel/mocks"
	calendarMocks "intake/internal/domains/calendar/mocks"
	calendarDto "intake/internal/domains/calendar/model/dto"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Demo.DefaultMaxBookings = 5
	cfg.Demo.BookingWindowMonths = 0

	return cfg
}

func today() time.Time {
	now := timezone.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// nextWeekday returns the first weekday at least two days out, so the date is
// always in the future regardless of when the test runs.
func nextWeekday() string {
	day := today().AddDate(0, 0, 2)
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}

	return day.Format(model.DateFormat)
}

func nextSaturday() string {
	day := today().AddDate(0, 0, 1)
	for day.Weekday() != time.Saturday {
		day = day.AddDate(0, 0, 1)
	}

	return day.Format(model.DateFormat)
}

func availableRow(date string) model.CalendarAvailability {
	return model.CalendarAvailability{
		ID:              "cal-id-123",
		Date:            date,
		IsAvailable:     true,
		MaxBookings:     5,
		CurrentBookings: 2,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestCalendarService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := calendarMocks.NewMockCalendar(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockOtel)

	weekday := nextWeekday()
	saturday := nextSaturday()
	pastDate := today().AddDate(0, 0, -3).Format(model.DateFormat)

	weekendReason := model.ReasonWeekend
	weekendRow := availableRow(saturday)
	weekendRow.IsAvailable = false
	weekendRow.CurrentBookings = 0
	weekendRow.Reason = &weekendReason

	t.Run("invalid date format", func(t *testing.T) {
		_, err := svc.Check(context.Background(), "03/15/2026")

		assert.Error(t, err)
	})

	t.Run("past date reported without touching the repository", func(t *testing.T) {
		res, err := svc.Check(context.Background(), pastDate)

		assert.NoError(t, err)
		assert.Equal(t, pastDate, res.Date)
		assert.False(t, res.IsAvailable)
		assert.Equal(t, model.ReasonPastDate, res.Reason)
	})

	t.Run("existing row returned as-is", func(t *testing.T) {
		row := availableRow(weekday)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(row, nil)

		res, err := svc.Check(context.Background(), weekday)

		assert.NoError(t, err)
		assert.True(t, res.IsAvailable)
		assert.Equal(t, 5, res.MaxBookings)
		assert.Equal(t, 2, res.CurrentBookings)
	})

	t.Run("missing weekday row materialized with defaults", func(t *testing.T) {
		row := availableRow(weekday)
		row.CurrentBookings = 0

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.CalendarAvailability{}, nil)

		mockRepo.EXPECT().
			InsertMissing(gomock.Any(), gomock.Any()).
			Return(nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(row, nil)

		res, err := svc.Check(context.Background(), weekday)

		assert.NoError(t, err)
		assert.True(t, res.IsAvailable)
		assert.Zero(t, res.CurrentBookings)
	})

	t.Run("missing weekend row materialized as unavailable", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.CalendarAvailability{}, nil)

		mockRepo.EXPECT().
			InsertMissing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []model.CalendarAvailability) error {
				assert.Len(t, rows, 1)
				assert.False(t, rows[0].IsAvailable)

				return nil
			})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(weekendRow, nil)

		res, err := svc.Check(context.Background(), saturday)

		assert.NoError(t, err)
		assert.False(t, res.IsAvailable)
		assert.Equal(t, model.ReasonWeekend, res.Reason)
	})

	t.Run("repository error propagated", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.CalendarAvailability{}, errors.New("db error"))

		_, err := svc.Check(context.Background(), weekday)

		assert.Error(t, err)
	})
}

func TestCalendarService_Reserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := calendarMocks.NewMockCalendar(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockOtel)

	weekday := nextWeekday()
	pastDate := today().AddDate(0, 0, -1).Format(model.DateFormat)

	tests := []struct {
		name      string
		date      string
		setupMock func()
		wantErr   bool
		errMsg    string
	}{
		{
			name: "successful reservation",
			date: weekday,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRow(weekday), nil)

				mockRepo.EXPECT().
					ConsumeSlot(gomock.Any(), weekday).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name:      "invalid date format",
			date:      "15-03-2026",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "past date rejected without repository calls",
			date:      pastDate,
			setupMock: func() {},
			wantErr:   true,
			errMsg:    "preferred date is in the past",
		},
		{
			name: "capacity exhausted",
			date: weekday,
			setupMock: func() {
				fullRow := availableRow(weekday)
				fullRow.CurrentBookings = fullRow.MaxBookings

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(fullRow, nil)

				mockRepo.EXPECT().
					ConsumeSlot(gomock.Any(), weekday).
					Return(false, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(fullRow, nil)
			},
			wantErr: true,
			errMsg:  "maximum bookings reached for the selected date",
		},
		{
			name: "date overridden as unavailable",
			date: weekday,
			setupMock: func() {
				reason := "facility closed for maintenance"
				closedRow := availableRow(weekday)
				closedRow.IsAvailable = false
				closedRow.Reason = &reason

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(closedRow, nil)

				mockRepo.EXPECT().
					ConsumeSlot(gomock.Any(), weekday).
					Return(false, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(closedRow, nil)
			},
			wantErr: true,
			errMsg:  "facility closed for maintenance",
		},
		{
			name: "consume slot error",
			date: weekday,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRow(weekday), nil)

				mockRepo.EXPECT().
					ConsumeSlot(gomock.Any(), weekday).
					Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Reserve(context.Background(), tt.date)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalendarService_AvailableDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := calendarMocks.NewMockCalendar(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := testConfig()
	cfg.Demo.BookingWindowMonths = 1

	svc := service.New(mockRepo, cfg, mockOtel)

	t.Run("window generated then listed in order", func(t *testing.T) {
		listed := []model.CalendarAvailability{
			availableRow(nextWeekday()),
		}

		mockRepo.EXPECT().
			InsertMissing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []model.CalendarAvailability) error {
				for _, row := range rows {
					day, err := time.Parse(model.DateFormat, row.Date)
					assert.NoError(t, err)
					assert.NotEqual(t, time.Saturday, day.Weekday())
					assert.NotEqual(t, time.Sunday, day.Weekday())
				}

				return nil
			})

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(listed, nil)

		res, err := svc.AvailableDates(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Dates, 1)
		assert.True(t, res.Dates[0].IsAvailable)
	})

	t.Run("insert error propagated", func(t *testing.T) {
		mockRepo.EXPECT().
			InsertMissing(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := svc.AvailableDates(context.Background())

		assert.Error(t, err)
	})
}

func TestCalendarService_Override(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := calendarMocks.NewMockCalendar(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := testConfig()
	svc := service.New(mockRepo, cfg, mockOtel)

	available := true

	tests := []struct {
		name      string
		req       calendarDto.OverrideDateRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful override",
			req: calendarDto.OverrideDateRequest{
				Date:        nextWeekday(),
				IsAvailable: &available,
				MaxBookings: 10,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, row model.CalendarAvailability) error {
						assert.Equal(t, 10, row.MaxBookings)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "zero max bookings falls back to configured default",
			req: calendarDto.OverrideDateRequest{
				Date:        nextWeekday(),
				IsAvailable: &available,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, row model.CalendarAvailability) error {
						assert.Equal(t, cfg.Demo.DefaultMaxBookings, row.MaxBookings)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "invalid date format",
			req: calendarDto.OverrideDateRequest{
				Date:        "not-a-date",
				IsAvailable: &available,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "upsert error",
			req: calendarDto.OverrideDateRequest{
				Date:        nextWeekday(),
				IsAvailable: &available,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Override(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
