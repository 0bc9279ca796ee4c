package repository

import (
	"context"
	"lodgy/infras/otel"
	"lodgy/infras/postgres"
	"lodgy/internal/domains/photo/model"
	gDto "lodgy/shared/dto"
	gRepo "lodgy/shared/repository"
)

type Photo interface {
	Insert(ctx context.Context, model model.PropertyPhoto) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PropertyPhoto, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PropertyPhoto, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PropertyPhoto]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Photo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PropertyPhoto](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
