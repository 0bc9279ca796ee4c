package service

import (
	"context"
	"fmt"
	"lodgy/config"
	"lodgy/infras/kafka"
	"lodgy/infras/otel"
	"lodgy/internal/domains/booking/lifecycle"
	"lodgy/internal/domains/booking/model"
	"lodgy/internal/domains/booking/model/dto"
	"lodgy/internal/domains/booking/repository"
	pricingService "lodgy/internal/domains/pricing/service"
	propertyModel "lodgy/internal/domains/property/model"
	propertyRepo "lodgy/internal/domains/property/repository"
	reviewModel "lodgy/internal/domains/review/model"
	reviewRepo "lodgy/internal/domains/review/repository"
	"lodgy/shared"
	"lodgy/shared/cache"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	"lodgy/shared/failure"
	"lodgy/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

var activeStatuses = []string{
	string(lifecycle.StatusPending),
	string(lifecycle.StatusConfirmed),
	string(lifecycle.StatusInProgress),
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (dto.CancelBookingResponse, error)
	PaymentResult(ctx context.Context, req dto.PaymentResultRequest, id string) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string) (dto.BookingResponse, error)
	SweepElapsed(ctx context.Context) (dto.SweepElapsedResponse, error)
	CanReview(ctx context.Context, id string) (dto.CanReviewResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	propertyRepo propertyRepo.Property
	reviewRepo   reviewRepo.Review
	pricing      pricingService.Pricing
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(
	repo repository.Booking,
	propertyRepo propertyRepo.Property,
	reviewRepo reviewRepo.Review,
	pricing pricingService.Pricing,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		reviewRepo:   reviewRepo,
		pricing:      pricing,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafkaClient,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	guestID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	checkIn, err := time.Parse(constant.DateOnlyFormat, req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString("check_in must be formatted as 2006-01-02")
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString("check_out must be formatted as 2006-01-02")
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check_out must be after check_in")
	}

	today := timezone.Truncate(timezone.Now())
	if checkIn.Format(constant.DateOnlyFormat) < today.Format(constant.DateOnlyFormat) {
		return res, failure.BadRequestFromString("check_in must not be in the past")
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(req.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty || !property.Active {
		return res, failure.NotFound("property not found")
	}

	if req.Guests > property.MaxGuests {
		return res, failure.BadRequestFromString(fmt.Sprintf("property sleeps at most %d guests", property.MaxGuests))
	}

	overlaps, err := s.repo.Exist(ctx, overlapFilter(req.PropertyID, checkIn, checkOut))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking overlap")

		return res, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	if overlaps {
		return res, failure.Conflict("property is already booked for the requested dates")
	}

	quote, err := s.pricing.Quote(ctx, req.PropertyID, req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(email, guestID, checkIn, checkOut, quote)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.invalidate(ctx, booking.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel moves the booking to cancelled on behalf of the caller. The actor is
// resolved once here; the refund fraction depends on who cancels, the
// property's policy, and how close to check-in the cancellation lands.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Reason == constant.Empty {
		return res, failure.BadRequestFromString("cancellation reason is required")
	}

	var (
		cancelled    model.Booking
		refundAmount float64
	)

	_, err = s.repo.Transition(ctx, id, func(booking model.Booking) (map[string]any, error) {
		property, propErr := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
		if propErr != nil {
			return nil, fmt.Errorf("failed to get property: %w", propErr)
		}

		actor, actorErr := s.deriveActor(ctx, booking, property)
		if actorErr != nil {
			return nil, actorErr
		}

		if transitionErr := lifecycle.ValidateTransition(booking.LifecycleStatus(), lifecycle.StatusCancelled); transitionErr != nil {
			return nil, transitionErr
		}

		now := timezone.Now()
		cancelledBy := actor.Label()

		updates := map[string]any{
			model.FieldStatus:             string(lifecycle.StatusCancelled),
			model.FieldCancelledBy:        cancelledBy,
			model.FieldCancelledAt:        now,
			model.FieldCancellationReason: req.Reason,
			constant.FieldModifiedAt:      now,
			constant.FieldModifiedBy:      cancelledBy,
		}

		cancelled = booking
		cancelled.Status = string(lifecycle.StatusCancelled)
		cancelled.CancelledBy = &cancelledBy
		cancelled.CancelledAt = &now
		cancelled.CancellationReason = &req.Reason

		if booking.PaymentStatus == string(lifecycle.PaymentPaid) {
			// Non-guest cancellations always refund in full.
			fraction := 1.0
			if actor == lifecycle.ActorGuest {
				fraction = lifecycle.RefundFraction(property.CancellationPolicy, booking.CheckIn, now, booking.Nights)
			}

			refundAmount = shared.RoundMoney(booking.FinalPrice * fraction)

			updates[model.FieldRefundAmount] = refundAmount
			updates[model.FieldPaymentStatus] = string(lifecycle.PaymentRefunded)

			cancelled.RefundAmount = &refundAmount
			cancelled.PaymentStatus = string(lifecycle.PaymentRefunded)
		}

		return updates, nil
	})
	if err != nil {
		return res, err
	}

	s.publishEvent(ctx, constant.KafkaTopicBookingCancelled, dto.NewBookingEvent(cancelled, cancelled.Status, cancelled.PaymentStatus, cancelled.RefundAmount))
	s.invalidate(ctx, id)

	res.Booking.FromModel(cancelled)
	res.RefundAmount = refundAmount

	return res, nil
}

// PaymentResult applies the payment provider's outcome. A successful payment
// confirms the booking; a failed one leaves it pending so the guest may retry.
func (s *serviceImpl) PaymentResult(ctx context.Context, req dto.PaymentResultRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentResult")
	defer scope.End()
	defer scope.TraceIfError(err)

	var updated model.Booking

	_, err = s.repo.Transition(ctx, id, func(booking model.Booking) (map[string]any, error) {
		if booking.PaymentStatus != string(lifecycle.PaymentPending) {
			return nil, failure.InvalidState(fmt.Sprintf("payment is already %s", booking.PaymentStatus))
		}

		now := timezone.Now()
		updated = booking

		if req.Outcome == "failed" {
			updated.PaymentStatus = string(lifecycle.PaymentFailed)

			return map[string]any{
				model.FieldPaymentStatus: string(lifecycle.PaymentFailed),
				constant.FieldModifiedAt: now,
				constant.FieldModifiedBy: lifecycle.ActorSystem.Label(),
			}, nil
		}

		if transitionErr := lifecycle.ValidateTransition(booking.LifecycleStatus(), lifecycle.StatusConfirmed); transitionErr != nil {
			return nil, transitionErr
		}

		updated.Status = string(lifecycle.StatusConfirmed)
		updated.PaymentStatus = string(lifecycle.PaymentPaid)

		return map[string]any{
			model.FieldStatus:        string(lifecycle.StatusConfirmed),
			model.FieldPaymentStatus: string(lifecycle.PaymentPaid),
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: lifecycle.ActorSystem.Label(),
		}, nil
	})
	if err != nil {
		return res, err
	}

	if updated.Status == string(lifecycle.StatusConfirmed) {
		s.publishEvent(ctx, constant.KafkaTopicBookingConfirmed, dto.NewBookingEvent(updated, updated.Status, updated.PaymentStatus, nil))
	}

	s.invalidate(ctx, id)

	res.FromModel(updated)

	return res, nil
}

// Complete finishes a stay. Owners may complete once check-out has passed;
// admins may complete at any time.
func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	var completed model.Booking

	_, err = s.repo.Transition(ctx, id, func(booking model.Booking) (map[string]any, error) {
		property, propErr := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
		if propErr != nil {
			return nil, fmt.Errorf("failed to get property: %w", propErr)
		}

		actor, actorErr := s.deriveActor(ctx, booking, property)
		if actorErr != nil {
			return nil, actorErr
		}

		if actor == lifecycle.ActorGuest {
			return nil, failure.ForbiddenError
		}

		if transitionErr := lifecycle.ValidateTransition(booking.LifecycleStatus(), lifecycle.StatusCompleted); transitionErr != nil {
			return nil, transitionErr
		}

		now := timezone.Now()

		if actor == lifecycle.ActorHost && booking.CheckOut.After(now) {
			return nil, failure.InvalidState("stay has not ended yet")
		}

		completed = booking
		completed.Status = string(lifecycle.StatusCompleted)
		completed.CompletedAt = &now

		return map[string]any{
			model.FieldStatus:        string(lifecycle.StatusCompleted),
			model.FieldCompletedAt:   now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.Label(),
		}, nil
	})
	if err != nil {
		return res, err
	}

	s.publishEvent(ctx, constant.KafkaTopicBookingCompleted, dto.NewBookingEvent(completed, completed.Status, completed.PaymentStatus, nil))
	s.invalidate(ctx, id)

	res.FromModel(completed)

	return res, nil
}

// SweepElapsed advances bookings past their calendar milestones: every active
// booking whose check-out has passed becomes completed, then every confirmed
// booking whose check-in has passed becomes in_progress. It is driven by an
// external scheduler through an internal endpoint.
func (s *serviceImpl) SweepElapsed(ctx context.Context) (res dto.SweepElapsedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepElapsed")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	elapsedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{string(lifecycle.StatusConfirmed), string(lifecycle.StatusInProgress)},
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorLessEq,
				Value:    now,
				Table:    model.TableName,
			},
		},
	}

	elapsed, err := s.repo.GetAll(ctx, gDto.QueryParams{}, elapsedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get elapsed bookings")

		return res, fmt.Errorf("failed to get elapsed bookings: %w", err)
	}

	for _, candidate := range elapsed {
		var completed model.Booking

		_, transitionErr := s.repo.Transition(ctx, candidate.ID, func(booking model.Booking) (map[string]any, error) {
			if validateErr := lifecycle.ValidateTransition(booking.LifecycleStatus(), lifecycle.StatusCompleted); validateErr != nil {
				return nil, validateErr
			}

			sweepTime := timezone.Now()

			completed = booking
			completed.Status = string(lifecycle.StatusCompleted)
			completed.CompletedAt = &sweepTime

			return map[string]any{
				model.FieldStatus:        string(lifecycle.StatusCompleted),
				model.FieldCompletedAt:   sweepTime,
				constant.FieldModifiedAt: sweepTime,
				constant.FieldModifiedBy: lifecycle.ActorSystem.Label(),
			}, nil
		})
		if transitionErr != nil {
			// A concurrent transition already settled this booking.
			log.Warn().Err(transitionErr).Str("booking_id", candidate.ID).Msg("skipping elapsed booking")

			continue
		}

		s.publishEvent(ctx, constant.KafkaTopicBookingCompleted, dto.NewBookingEvent(completed, completed.Status, completed.PaymentStatus, nil))
		s.invalidate(ctx, candidate.ID)

		res.Completed++
	}

	startedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    string(lifecycle.StatusConfirmed),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    now,
				Table:    model.TableName,
			},
		},
	}

	starting, err := s.repo.GetAll(ctx, gDto.QueryParams{}, startedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get starting bookings")

		return res, fmt.Errorf("failed to get starting bookings: %w", err)
	}

	for _, candidate := range starting {
		_, transitionErr := s.repo.Transition(ctx, candidate.ID, func(booking model.Booking) (map[string]any, error) {
			if validateErr := lifecycle.ValidateTransition(booking.LifecycleStatus(), lifecycle.StatusInProgress); validateErr != nil {
				return nil, validateErr
			}

			sweepTime := timezone.Now()

			return map[string]any{
				model.FieldStatus:        string(lifecycle.StatusInProgress),
				constant.FieldModifiedAt: sweepTime,
				constant.FieldModifiedBy: lifecycle.ActorSystem.Label(),
			}, nil
		})
		if transitionErr != nil {
			log.Warn().Err(transitionErr).Str("booking_id", candidate.ID).Msg("skipping starting booking")

			continue
		}

		s.invalidate(ctx, candidate.ID)

		res.Started++
	}

	return res, nil
}

// CanReview reports whether the booking is reviewable: a completed stay
// without an existing review. Only parties to the booking may ask.
func (s *serviceImpl) CanReview(ctx context.Context, id string) (res dto.CanReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CanReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
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

	if _, err = s.deriveActor(ctx, booking, property); err != nil {
		return res, err
	}

	if booking.Status != string(lifecycle.StatusCompleted) {
		res.Reason = "booking is not completed"

		return res, nil
	}

	reviewed, err := s.reviewRepo.Exist(ctx, shared.FilterByID(id, reviewModel.FieldBookingID, reviewModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing review")

		return res, fmt.Errorf("failed to check existing review: %w", err)
	}

	if reviewed {
		res.Reason = "booking already reviewed"

		return res, nil
	}

	res.CanReview = true

	return res, nil
}

// deriveActor resolves who the caller is relative to the booking. Admins win
// over ownership so that an admin who also owns the property acts as admin.
func (s *serviceImpl) deriveActor(ctx context.Context, booking model.Booking, property propertyModel.Property) (lifecycle.Actor, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch {
	case role == constant.RoleAdmin || role == constant.RoleAdminMaster:
		return lifecycle.ActorAdmin, nil
	case userID == booking.GuestID:
		return lifecycle.ActorGuest, nil
	case userID == property.OwnerID:
		return lifecycle.ActorHost, nil
	default:
		return lifecycle.ActorSystem, failure.ResourceRestrictedError
	}
}

func overlapFilter(propertyID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	lastNight := checkOut.AddDate(0, 0, -1).Format(constant.DateOnlyFormat)
	firstBlockedCheckout := checkIn.AddDate(0, 0, 1).Format(constant.DateOnlyFormat)

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    activeStatuses,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    lastNight,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    firstBlockedCheckout,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic string, event dto.BookingEvent) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   event.BookingID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, topic, message); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
