package repository

import (
	"context"
	"fmt"
	"lodgy/infras/otel"
	"lodgy/infras/postgres"
	"lodgy/internal/domains/booking/model"
	"lodgy/shared"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	"lodgy/shared/failure"
	gRepo "lodgy/shared/repository"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Transition(ctx context.Context, id string, fn func(model.Booking) (map[string]any, error)) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Transition re-reads the booking under a row lock, lets fn decide the field
// updates from the locked snapshot, and commits both atomically. Concurrent
// transitions on the same booking serialize on the lock, so the loser sees
// the winner's status and fn can reject it.
func (repo *repositoryImpl) Transition(ctx context.Context, id string, fn func(model.Booking) (map[string]any, error)) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return booking, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err = repo.GetForUpdateTx(ctx, tx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		err = failure.NotFound("booking not found")

		return booking, err
	}

	updates, err := fn(booking)
	if err != nil {
		return booking, err
	}

	if len(updates) > 0 {
		if err = repo.UpdateTx(ctx, tx, updates, filter); err != nil {
			log.Error().Err(err).Msg("failed to update booking")

			return booking, fmt.Errorf("failed to update booking: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return booking, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return booking, nil
}
