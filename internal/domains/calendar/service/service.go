package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"intake/config"
	"intake/infras/otel"
	"intake/internal/domains/calendar/model"
	"intake/internal/domains/calendar/model/dto"
	"intake/internal/domains/calendar/repository"
	"intake/shared/constant"
	gDto "intake/shared/dto"
	"intake/shared/failure"
	gModel "intake/shared/model"
	"intake/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Calendar gates demo bookings on per-date capacity rows. Rows are
// materialized lazily: weekdays default to available with the configured
// capacity, weekends to unavailable. Read paths are deliberately uncached so
// booking counters are always live.
type Calendar interface {
	Check(ctx context.Context, date string) (dto.AvailabilityResponse, error)
	AvailableDates(ctx context.Context) (dto.GetCalendarResponse, error)
	Reserve(ctx context.Context, date string) error
	Override(ctx context.Context, req dto.OverrideDateRequest) error
}

type serviceImpl struct {
	repo repository.Calendar
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Calendar, cfg *config.Config, otel otel.Otel) Calendar {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Check(ctx context.Context, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := parseDate(date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	// Past dates are reported unavailable without materializing a row.
	if day.Before(today()) {
		res.Date = date
		res.Reason = model.ReasonPastDate

		return res, nil
	}

	row, err := s.ensure(ctx, date, day)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to check date availability")

		return res, fmt.Errorf("failed to check date availability: %w", err)
	}

	res.FromModel(row)

	return res, nil
}

func (s *serviceImpl) AvailableDates(ctx context.Context) (res dto.GetCalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := userFrom(ctx)
	from := today()
	until := from.AddDate(0, s.cfg.Demo.BookingWindowMonths, 0)

	rows := []model.CalendarAvailability{}

	for day := from; !day.After(until); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) {
			continue
		}

		rows = append(rows, s.defaultRow(day, user))
	}

	if err = s.repo.InsertMissing(ctx, rows); err != nil {
		log.Error().Err(err).Msg("failed to generate availability window")

		return res, fmt.Errorf("failed to generate availability window: %w", err)
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from.Format(model.DateFormat),
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability rows")

		return res, fmt.Errorf("failed to get availability rows: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// Reserve consumes one unit of the date's capacity. The booking path uses the
// same lazy materialization rule as the check path, then relies on a single
// conditional update so concurrent submissions cannot push the counter past
// the maximum.
func (s *serviceImpl) Reserve(ctx context.Context, date string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := parseDate(date)
	if err != nil {
		return failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if day.Before(today()) {
		return failure.BadRequestFromString("preferred date is in the past") // nolint:wrapcheck
	}

	if _, err = s.ensure(ctx, date, day); err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to materialize availability row")

		return fmt.Errorf("failed to materialize availability row: %w", err)
	}

	reserved, err := s.repo.ConsumeSlot(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to consume booking slot")

		return fmt.Errorf("failed to consume booking slot: %w", err)
	}

	if reserved {
		return nil
	}

	row, err := s.repo.Get(ctx, filterByDate(date))
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to read availability row")

		return fmt.Errorf("failed to read availability row: %w", err)
	}

	if !row.IsAvailable {
		if row.Reason != nil && *row.Reason != "" {
			return failure.BadRequestFromString(*row.Reason) // nolint:wrapcheck
		}

		return failure.BadRequestFromString("selected date is not available for demos") // nolint:wrapcheck
	}

	return failure.BadRequestFromString("maximum bookings reached for the selected date") // nolint:wrapcheck
}

func (s *serviceImpl) Override(ctx context.Context, req dto.OverrideDateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Override")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = parseDate(req.Date); err != nil {
		return failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	user := userFrom(ctx)

	maxBookings := req.MaxBookings
	if maxBookings == 0 {
		maxBookings = s.cfg.Demo.DefaultMaxBookings
	}

	row := model.CalendarAvailability{
		ID:          uuid.NewString(),
		Date:        req.Date,
		IsAvailable: *req.IsAvailable,
		MaxBookings: maxBookings,
		Reason:      req.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Upsert(ctx, row); err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed to override availability row")

		return fmt.Errorf("failed to override availability row: %w", err)
	}

	return nil
}

// ensure returns the availability row for the date, lazily creating it with
// the weekday/weekend default when missing. The conflict-free insert keeps
// concurrent materialization of the same date from erroring out.
func (s *serviceImpl) ensure(ctx context.Context, date string, day time.Time) (model.CalendarAvailability, error) {
	row, err := s.repo.Get(ctx, filterByDate(date))
	if err != nil {
		return row, err
	}

	if row.ID != constant.Empty {
		return row, nil
	}

	if err := s.repo.InsertMissing(ctx, []model.CalendarAvailability{s.defaultRow(day, userFrom(ctx))}); err != nil {
		return row, err
	}

	return s.repo.Get(ctx, filterByDate(date))
}

func (s *serviceImpl) defaultRow(day time.Time, user string) model.CalendarAvailability {
	row := model.CalendarAvailability{
		ID:          uuid.NewString(),
		Date:        day.Format(model.DateFormat),
		IsAvailable: true,
		MaxBookings: s.cfg.Demo.DefaultMaxBookings,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if isWeekend(day) {
		reason := model.ReasonWeekend
		row.IsAvailable = false
		row.Reason = &reason
	}

	return row
}

func filterByDate(date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
		},
	}
}

func parseDate(date string) (time.Time, error) {
	return time.Parse(model.DateFormat, date) // nolint:wrapcheck
}

func today() time.Time {
	now := timezone.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}

func userFrom(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return constant.ContextGuest
	}

	return user
}
