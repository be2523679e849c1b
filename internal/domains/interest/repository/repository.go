package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"intake/infras/otel"
	"intake/infras/postgres"
	"intake/internal/domains/interest/model"
	gDto "intake/shared/dto"
	gRepo "intake/shared/repository"
)

type Interest interface {
	Insert(ctx context.Context, model model.Interest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Interest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Interest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Interest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Interest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Interest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
