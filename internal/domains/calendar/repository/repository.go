package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"intake/infras/otel"
	"intake/infras/postgres"
	"intake/internal/domains/calendar/model"
	"intake/shared/constant"
	gDto "intake/shared/dto"
	"intake/shared/logger"
	gRepo "intake/shared/repository"
)

type Calendar interface {
	Insert(ctx context.Context, model model.CalendarAvailability) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CalendarAvailability, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CalendarAvailability, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ConsumeSlot(ctx context.Context, date string) (bool, error)
	InsertMissing(ctx context.Context, models []model.CalendarAvailability) error
	Upsert(ctx context.Context, model model.CalendarAvailability) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CalendarAvailability]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Calendar {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CalendarAvailability](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ConsumeSlot reserves one booking unit for the given date with a single
// conditional update. It reports false when the date is unavailable or the
// capacity is already exhausted, so check-then-act races cannot overbook.
func (repo *repositoryImpl) ConsumeSlot(ctx context.Context, date string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ConsumeSlot")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + 1 WHERE %s = :date AND %s = TRUE AND %s < %s",
		model.TableName,
		model.FieldCurrentBookings, model.FieldCurrentBookings,
		model.FieldDate,
		model.FieldIsAvailable,
		model.FieldCurrentBookings, model.FieldMaxBookings,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{"date": date})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to consume booking slot (%s): %w", model.EntityName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return rows > 0, nil
}

// InsertMissing bulk-inserts availability rows, skipping dates that already
// have one. The unique constraint on the date column makes concurrent window
// generation safe.
func (repo *repositoryImpl) InsertMissing(ctx context.Context, models []model.CalendarAvailability) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".InsertMissing")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	placeholders := []string{}
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING",
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, models)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert missing availability rows (%s): %w", model.EntityName, err)
	}

	return nil
}

// Upsert creates or overrides the availability row for a date.
func (repo *repositoryImpl) Upsert(ctx context.Context, mod model.CalendarAvailability) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	placeholders := []string{}
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s",
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldDate,
		model.FieldIsAvailable, model.FieldIsAvailable,
		model.FieldMaxBookings, model.FieldMaxBookings,
		model.FieldReason, model.FieldReason,
		constant.FieldModifiedBy, constant.FieldModifiedBy,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, mod)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert availability row (%s): %w", model.EntityName, err)
	}

	return nil
}
