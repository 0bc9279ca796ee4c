package service

import (
	"context"
	"fmt"
	"lodgy/config"
	"lodgy/infras/otel"
	"lodgy/internal/domains/booking/lifecycle"
	bookingModel "lodgy/internal/domains/booking/model"
	bookingRepo "lodgy/internal/domains/booking/repository"
	propertyModel "lodgy/internal/domains/property/model"
	propertyRepo "lodgy/internal/domains/property/repository"
	"lodgy/internal/domains/review/model"
	"lodgy/internal/domains/review/model/dto"
	"lodgy/internal/domains/review/repository"
	"lodgy/shared"
	"lodgy/shared/cache"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	"lodgy/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReview = "review:gets"
	cacheCountReview  = "review:count"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest, bookingID string) (dto.ReviewResponse, error)
	GetAllByProperty(ctx context.Context, req gDto.QueryParams, propertyID string) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo         repository.Review
	bookingRepo  bookingRepo.Booking
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Review, bookingRepo bookingRepo.Booking, propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create records the host's review of the guest after a completed stay. Only
// the owner of the booked property may review, and each booking carries at
// most one review.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest, bookingID string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.OwnerID != userID {
		return res, failure.ResourceRestrictedError
	}

	if booking.Status != string(lifecycle.StatusCompleted) {
		return res, failure.InvalidState("booking is not completed")
	}

	reviewed, err := s.repo.Exist(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing review")

		return res, fmt.Errorf("failed to check existing review: %w", err)
	}

	if reviewed {
		return res, failure.Conflict("booking already reviewed")
	}

	review := req.ToModel(email, bookingID, booking.PropertyID, booking.GuestID, property.OwnerID)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) GetAllByProperty(ctx context.Context, req gDto.QueryParams, propertyID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)
	}()
}
