package repository

import (
	"context"
	"lodgy/infras/otel"
	"lodgy/infras/postgres"
	"lodgy/internal/domains/review/model"
	gDto "lodgy/shared/dto"
	gRepo "lodgy/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, model model.GuestReview) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GuestReview, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GuestReview, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.GuestReview]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GuestReview](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
