package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"intake/infras/otel"
	"intake/infras/postgres"
	"intake/internal/domains/demotype/model"
	gDto "intake/shared/dto"
	gRepo "intake/shared/repository"
)

type DemoType interface {
	Insert(ctx context.Context, model model.DemoType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DemoType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DemoType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DemoType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DemoType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DemoType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
