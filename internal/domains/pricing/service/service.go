package service

import (
	"context"
	"fmt"
	"lodgy/config"
	"lodgy/infras/otel"
	"lodgy/internal/domains/pricing/model"
	"lodgy/internal/domains/pricing/model/dto"
	"lodgy/internal/domains/pricing/repository"
	propertyModel "lodgy/internal/domains/property/model"
	propertyRepo "lodgy/internal/domains/property/repository"
	"lodgy/shared"
	"lodgy/shared/cache"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	"lodgy/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPricing = "pricing:get_all"
	cacheQuote         = "pricing:quote"
)

type Pricing interface {
	Create(ctx context.Context, req dto.CreatePricingRequest, propertyID string) (dto.PricingResponse, error)
	GetAllByProperty(ctx context.Context, req gDto.QueryParams, propertyID string) (dto.GetPricingsResponse, error)
	Delete(ctx context.Context, propertyID, pricingID string) error
	Quote(ctx context.Context, propertyID, checkIn, checkOut string) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo         repository.Pricing
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Pricing, propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// ResolveNightRate returns the rate for one night. Of the overrides covering
// the night, the highest priority wins; among equal priorities the most
// recently created row wins. Without a covering override the base rate applies.
func ResolveNightRate(baseRate float64, overrides []model.DynamicPricing, night time.Time) float64 {
	var best *model.DynamicPricing

	for i := range overrides {
		o := &overrides[i]
		if !o.Covers(night) {
			continue
		}

		if best == nil ||
			o.Priority > best.Priority ||
			(o.Priority == best.Priority && o.CreatedAt.After(best.CreatedAt)) {
			best = o
		}
	}

	if best == nil {
		return baseRate
	}

	return best.PricePerNight
}

// QuoteStay prices every night in [checkIn, checkOut) and adds the property's
// fees. The service fee is a rate applied to the nightly subtotal only.
func QuoteStay(property propertyModel.Property, overrides []model.DynamicPricing, checkIn, checkOut time.Time) dto.QuoteResponse {
	res := dto.QuoteResponse{
		PropertyID: property.ID,
		CheckIn:    checkIn.Format(constant.DateOnlyFormat),
		CheckOut:   checkOut.Format(constant.DateOnlyFormat),
	}

	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		rate := ResolveNightRate(property.BasePricePerNight, overrides, night)

		res.NightRates = append(res.NightRates, dto.NightRate{
			Date: night.Format(constant.DateOnlyFormat),
			Rate: rate,
		})
		res.Subtotal += rate
	}

	res.Nights = len(res.NightRates)
	res.Subtotal = shared.RoundMoney(res.Subtotal)
	res.CleaningFee = property.CleaningFee
	res.ServiceFee = shared.RoundMoney(res.Subtotal * property.ServiceFeeRate)
	res.Total = shared.RoundMoney(res.Subtotal + res.CleaningFee + res.ServiceFee)

	return res
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePricingRequest, propertyID string) (res dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwnedProperty(ctx, propertyID); err != nil {
		return res, err
	}

	startDate, err := time.Parse(constant.DateOnlyFormat, req.StartDate)
	if err != nil {
		return res, failure.BadRequestFromString("start_date must be formatted as 2006-01-02")
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, req.EndDate)
	if err != nil {
		return res, failure.BadRequestFromString("end_date must be formatted as 2006-01-02")
	}

	if endDate.Before(startDate) {
		return res, failure.BadRequestFromString("end_date must not be before start_date")
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	pricing := req.ToModel(email, propertyID, startDate, endDate)

	if err = s.repo.Insert(ctx, pricing); err != nil {
		log.Error().Err(err).Msg("failed to create pricing override")

		return res, fmt.Errorf("failed to create pricing override: %w", err)
	}

	res.FromModel(pricing)

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) GetAllByProperty(ctx context.Context, req gDto.QueryParams, propertyID string) (res dto.GetPricingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPricing, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pricing overrides")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing overrides")

		return res, fmt.Errorf("failed to count pricing overrides: %w", err)
	}

	pricings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing overrides")

		return res, fmt.Errorf("failed to get pricing overrides: %w", err)
	}

	res.FromModels(pricings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing overrides to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, propertyID, pricingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwnedProperty(ctx, propertyID); err != nil {
		return err
	}

	filter := shared.FilterByID(pricingID, model.FieldID, model.TableName)

	pricing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing override")

		return fmt.Errorf("failed to get pricing override: %w", err)
	}

	if pricing.ID == constant.Empty || pricing.PropertyID != propertyID {
		return failure.NotFound("pricing override not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete pricing override")

		return fmt.Errorf("failed to delete pricing override: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Quote(ctx context.Context, propertyID, checkIn, checkOut string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkInDate, err := time.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return res, failure.BadRequestFromString("check_in must be formatted as 2006-01-02")
	}

	checkOutDate, err := time.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return res, failure.BadRequestFromString("check_out must be formatted as 2006-01-02")
	}

	if !checkOutDate.After(checkInDate) {
		return res, failure.BadRequestFromString("check_out must be after check_in")
	}

	cacheKey := shared.BuildCacheKey(cacheQuote, propertyID, checkIn, checkOut)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quote")

		return res, nil
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found")
	}

	overrides, err := s.overridesForStay(ctx, propertyID, checkInDate, checkOutDate)
	if err != nil {
		return res, err
	}

	res = QuoteStay(property, overrides, checkInDate, checkOutDate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quote to cache")
		}
	}()

	return res, nil
}

// overridesForStay loads every override of the property that touches at least
// one night of [checkIn, checkOut).
func (s *serviceImpl) overridesForStay(ctx context.Context, propertyID string, checkIn, checkOut time.Time) ([]model.DynamicPricing, error) {
	lastNight := checkOut.AddDate(0, 0, -1)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    lastNight.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    checkIn.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
		},
	}

	overrides, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing overrides")

		return nil, fmt.Errorf("failed to get pricing overrides: %w", err)
	}

	return overrides, nil
}

func (s *serviceImpl) getOwnedProperty(ctx context.Context, propertyID string) (propertyModel.Property, error) {
	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return property, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return property, failure.NotFound("property not found")
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if userID != property.OwnerID && role != constant.RoleAdmin && role != constant.RoleAdminMaster {
		return property, failure.ResourceRestrictedError
	}

	return property, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPricing)
		shared.InvalidateCaches(c, s.cache, cacheQuote)
	}()
}
