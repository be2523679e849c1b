package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"intake/infras/otel"
	"intake/infras/postgres"
	"intake/internal/domains/demorequest/model"
	"intake/shared/constant"
	gDto "intake/shared/dto"
	"intake/shared/logger"
	gRepo "intake/shared/repository"
)

type DemoRequest interface {
	Insert(ctx context.Context, model model.DemoRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DemoRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DemoRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.DemoRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DemoRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DemoRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountByStatus groups the whole table by lifecycle status for the admin
// stats endpoint.
func (repo *repositoryImpl) CountByStatus(ctx context.Context) (map[string]int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountByStatus")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s, COUNT(%s) AS total FROM %s GROUP BY %s", model.FieldStatus, model.FieldID, model.TableName, model.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}{}

	if err := repo.db.Read.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count data by status (%s): %w", model.EntityName, err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}

	return counts, nil
}
