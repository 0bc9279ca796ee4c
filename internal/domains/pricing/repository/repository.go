package repository

import (
	"context"
	"lodgy/infras/otel"
	"lodgy/infras/postgres"
	"lodgy/internal/domains/pricing/model"
	gDto "lodgy/shared/dto"
	gRepo "lodgy/shared/repository"
)

type Pricing interface {
	Insert(ctx context.Context, model model.DynamicPricing) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DynamicPricing, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DynamicPricing, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DynamicPricing]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Pricing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DynamicPricing](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
