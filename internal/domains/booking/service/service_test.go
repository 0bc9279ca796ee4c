package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodgy/config"
	kafkaMocks "lodgy/infras/kafka/mocks"
	"lodgy/infras/otel/mocks"
	cacheMocks "lodgy/shared/cache/mocks"
	"lodgy/shared/constant"
	"lodgy/shared/failure"
	"lodgy/shared/timezone"

	"lodgy/internal/domains/booking/lifecycle"
	bookingMocks "lodgy/internal/domains/booking/mocks"
	"lodgy/internal/domains/booking/model"
	"lodgy/internal/domains/booking/model/dto"
	"lodgy/internal/domains/booking/service"
	pricingDto "lodgy/internal/domains/pricing/model/dto"
	pricingMocks "lodgy/internal/domains/pricing/service/mocks"
	propertyMocks "lodgy/internal/domains/property/mocks"
	propertyModel "lodgy/internal/domains/property/model"
	reviewMocks "lodgy/internal/domains/review/mocks"
)

type fixture struct {
	repo     *bookingMocks.MockBooking
	property *propertyMocks.MockProperty
	review   *reviewMocks.MockReview
	pricing  *pricingMocks.MockPricing
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
	svc      service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		property: propertyMocks.NewMockProperty(ctrl),
		review:   reviewMocks.NewMockReview(ctrl),
		pricing:  pricingMocks.NewMockPricing(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.property, f.review, f.pricing, &config.Config{}, f.cache, mocks.NewOtel(), f.kafka)

	return f
}

func userContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, userID+"@example.com")

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func activeProperty() propertyModel.Property {
	return propertyModel.Property{
		ID:                 "property-1",
		OwnerID:            "owner-1",
		MaxGuests:          4,
		BasePricePerNight:  100,
		CancellationPolicy: "flexible",
		Active:             true,
	}
}

func paidBooking(checkIn time.Time, nights int) model.Booking {
	return model.Booking{
		ID:            "booking-1",
		PropertyID:    "property-1",
		GuestID:       "guest-1",
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, nights),
		Guests:        2,
		PricePerNight: 300 / float64(nights),
		Nights:        nights,
		TotalPrice:    300,
		FinalPrice:    300,
		Status:        string(lifecycle.StatusConfirmed),
		PaymentStatus: string(lifecycle.PaymentPaid),
	}
}

// expectTransition wires the Transition mock to run the callback against the
// given snapshot, the way the repository would after locking the row.
func expectTransition(f fixture, booking model.Booking) *map[string]any {
	captured := &map[string]any{}

	f.repo.EXPECT().
		Transition(gomock.Any(), booking.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(model.Booking) (map[string]any, error)) (model.Booking, error) {
			updates, err := fn(booking)
			if err != nil {
				return booking, err
			}

			*captured = updates

			return booking, nil
		})

	return captured
}

func TestBookingService_Create(t *testing.T) {
	checkIn := timezone.Now().AddDate(0, 0, 7)
	checkOut := checkIn.AddDate(0, 0, 2)

	request := dto.CreateBookingRequest{
		PropertyID: "property-1",
		CheckIn:    checkIn.Format(constant.DateOnlyFormat),
		CheckOut:   checkOut.Format(constant.DateOnlyFormat),
		Guests:     2,
	}

	t.Run("successful booking takes its total from the quote", func(t *testing.T) {
		f := newFixture(t)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.pricing.EXPECT().
			Quote(gomock.Any(), "property-1", request.CheckIn, request.CheckOut).
			Return(pricingDto.QuoteResponse{
				Nights: 2,
				NightRates: []pricingDto.NightRate{
					{Date: request.CheckIn, Rate: 150},
					{Date: checkIn.AddDate(0, 0, 1).Format(constant.DateOnlyFormat), Rate: 150},
				},
				Subtotal:    300,
				CleaningFee: 25,
				ServiceFee:  30,
				Total:       355,
			}, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, "guest-1", booking.GuestID)
				assert.Equal(t, string(lifecycle.StatusPending), booking.Status)
				assert.Equal(t, string(lifecycle.PaymentPending), booking.PaymentStatus)
				assert.Equal(t, 2, booking.Nights)
				assert.InDelta(t, 150.0, booking.PricePerNight, 0.001)
				assert.InDelta(t, 300.0, booking.TotalPrice, 0.001)
				assert.InDelta(t, 30.0, booking.ServiceFee, 0.001)
				assert.InDelta(t, 25.0, booking.CleaningFee, 0.001)
				assert.InDelta(t, 355.0, booking.FinalPrice, 0.001)

				return nil
			})

		res, err := f.svc.Create(userContext("guest-1", constant.RoleGuest), request)

		assert.NoError(t, err)
		assert.Equal(t, string(lifecycle.StatusPending), res.Status)
		assert.InDelta(t, 300.0, res.TotalPrice, 0.001)
		assert.InDelta(t, 355.0, res.FinalPrice, 0.001)
	})

	t.Run("overlapping booking is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(userContext("guest-1", constant.RoleGuest), request)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("too many guests is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)

		crowded := request
		crowded.Guests = 5

		_, err := f.svc.Create(userContext("guest-1", constant.RoleGuest), crowded)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inactive property is not found", func(t *testing.T) {
		f := newFixture(t)

		inactive := activeProperty()
		inactive.Active = false

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		_, err := f.svc.Create(userContext("guest-1", constant.RoleGuest), request)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("check_out before check_in is rejected", func(t *testing.T) {
		f := newFixture(t)

		reversed := request
		reversed.CheckIn, reversed.CheckOut = reversed.CheckOut, reversed.CheckIn

		_, err := f.svc.Create(userContext("guest-1", constant.RoleGuest), reversed)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("past check_in is rejected", func(t *testing.T) {
		f := newFixture(t)

		past := request
		past.CheckIn = timezone.Now().AddDate(0, 0, -3).Format(constant.DateOnlyFormat)
		past.CheckOut = timezone.Now().AddDate(0, 0, -1).Format(constant.DateOnlyFormat)

		_, err := f.svc.Create(userContext("guest-1", constant.RoleGuest), past)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	request := dto.CancelBookingRequest{Reason: "plans changed"}

	t.Run("guest cancelling two days ahead on flexible gets a full refund", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(48*time.Hour), 3)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		updates := expectTransition(f, booking)

		res, err := f.svc.Cancel(userContext("guest-1", constant.RoleGuest), request, booking.ID)

		assert.NoError(t, err)
		assert.InDelta(t, 300.0, res.RefundAmount, 0.001)
		assert.Equal(t, string(lifecycle.StatusCancelled), res.Booking.Status)
		assert.Equal(t, string(lifecycle.PaymentRefunded), res.Booking.PaymentStatus)
		assert.Equal(t, string(lifecycle.StatusCancelled), (*updates)[model.FieldStatus])
		assert.Equal(t, "guest", (*updates)[model.FieldCancelledBy])
		assert.Equal(t, "plans changed", (*updates)[model.FieldCancellationReason])
	})

	t.Run("late guest cancellation forfeits the first night", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(10*time.Hour), 2)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		expectTransition(f, booking)

		res, err := f.svc.Cancel(userContext("guest-1", constant.RoleGuest), request, booking.ID)

		assert.NoError(t, err)
		assert.InDelta(t, 150.0, res.RefundAmount, 0.001)
	})

	t.Run("host cancellation always refunds in full", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(10*time.Hour), 2)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		updates := expectTransition(f, booking)

		res, err := f.svc.Cancel(userContext("owner-1", constant.RoleOwner), request, booking.ID)

		assert.NoError(t, err)
		assert.InDelta(t, 300.0, res.RefundAmount, 0.001)
		assert.Equal(t, "owner", (*updates)[model.FieldCancelledBy])
	})

	t.Run("unpaid booking cancels without a refund", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(48*time.Hour), 2)
		booking.Status = string(lifecycle.StatusPending)
		booking.PaymentStatus = string(lifecycle.PaymentPending)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		updates := expectTransition(f, booking)

		res, err := f.svc.Cancel(userContext("guest-1", constant.RoleGuest), request, booking.ID)

		assert.NoError(t, err)
		assert.InDelta(t, 0.0, res.RefundAmount, 0.001)
		assert.NotContains(t, *updates, model.FieldRefundAmount)
		assert.NotContains(t, *updates, model.FieldPaymentStatus)
	})

	t.Run("missing reason is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Cancel(userContext("guest-1", constant.RoleGuest), dto.CancelBookingRequest{}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("losing a concurrent cancel race gets a conflict", func(t *testing.T) {
		f := newFixture(t)

		// Another cancel committed between this request and the row lock.
		booking := paidBooking(timezone.Now().Add(48*time.Hour), 2)
		booking.Status = string(lifecycle.StatusCancelled)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		expectTransition(f, booking)

		_, err := f.svc.Cancel(userContext("guest-1", constant.RoleGuest), request, booking.ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(-72*time.Hour), 2)
		booking.Status = string(lifecycle.StatusCompleted)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		expectTransition(f, booking)

		_, err := f.svc.Cancel(userContext("guest-1", constant.RoleGuest), request, booking.ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unrelated user cannot cancel", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(48*time.Hour), 2)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		expectTransition(f, booking)

		_, err := f.svc.Cancel(userContext("someone-else", constant.RoleGuest), request, booking.ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestBookingService_PaymentResult(t *testing.T) {
	t.Run("successful payment confirms the booking", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(48*time.Hour), 2)
		booking.Status = string(lifecycle.StatusPending)
		booking.PaymentStatus = string(lifecycle.PaymentPending)

		updates := expectTransition(f, booking)

		res, err := f.svc.PaymentResult(context.Background(), dto.PaymentResultRequest{Outcome: "paid"}, booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, string(lifecycle.StatusConfirmed), res.Status)
		assert.Equal(t, string(lifecycle.PaymentPaid), res.PaymentStatus)
		assert.Equal(t, string(lifecycle.StatusConfirmed), (*updates)[model.FieldStatus])
	})

	t.Run("failed payment keeps the booking pending", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(48*time.Hour), 2)
		booking.Status = string(lifecycle.StatusPending)
		booking.PaymentStatus = string(lifecycle.PaymentPending)

		updates := expectTransition(f, booking)

		res, err := f.svc.PaymentResult(context.Background(), dto.PaymentResultRequest{Outcome: "failed"}, booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, string(lifecycle.StatusPending), res.Status)
		assert.Equal(t, string(lifecycle.PaymentFailed), res.PaymentStatus)
		assert.NotContains(t, *updates, model.FieldStatus)
	})

	t.Run("settled payment cannot be applied twice", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(48*time.Hour), 2)

		expectTransition(f, booking)

		_, err := f.svc.PaymentResult(context.Background(), dto.PaymentResultRequest{Outcome: "paid"}, booking.ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_Complete(t *testing.T) {
	t.Run("host completes an elapsed stay", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(-96*time.Hour), 2)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		updates := expectTransition(f, booking)

		res, err := f.svc.Complete(userContext("owner-1", constant.RoleOwner), booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, string(lifecycle.StatusCompleted), res.Status)
		assert.Equal(t, string(lifecycle.StatusCompleted), (*updates)[model.FieldStatus])
	})

	t.Run("host cannot complete before check-out", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(24*time.Hour), 2)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		expectTransition(f, booking)

		_, err := f.svc.Complete(userContext("owner-1", constant.RoleOwner), booking.ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("admin completes at any time", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(24*time.Hour), 2)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		expectTransition(f, booking)

		res, err := f.svc.Complete(userContext("admin-1", constant.RoleAdmin), booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, string(lifecycle.StatusCompleted), res.Status)
	})

	t.Run("guest cannot complete", func(t *testing.T) {
		f := newFixture(t)

		booking := paidBooking(timezone.Now().Add(-96*time.Hour), 2)

		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		expectTransition(f, booking)

		_, err := f.svc.Complete(userContext("guest-1", constant.RoleGuest), booking.ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestBookingService_SweepElapsed(t *testing.T) {
	f := newFixture(t)

	first := paidBooking(timezone.Now().Add(-96*time.Hour), 2)
	second := paidBooking(timezone.Now().Add(-120*time.Hour), 2)
	second.ID = "booking-2"

	// A confirmed stay past check-in but before check-out moves to in_progress.
	started := paidBooking(timezone.Now().Add(-12*time.Hour), 3)
	started.ID = "booking-3"

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{first, second}, nil)

	expectTransition(f, first)

	// The second booking was cancelled between the sweep query and the lock.
	second.Status = string(lifecycle.StatusCancelled)
	expectTransition(f, second)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{started}, nil)

	startedUpdates := expectTransition(f, started)

	res, err := f.svc.SweepElapsed(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Completed)
	assert.Equal(t, 1, res.Started)
	assert.Equal(t, string(lifecycle.StatusInProgress), (*startedUpdates)[model.FieldStatus])
	assert.NotContains(t, *startedUpdates, model.FieldCompletedAt)
}

func TestBookingService_CanReview(t *testing.T) {
	completedBooking := func() model.Booking {
		booking := paidBooking(timezone.Now().Add(-96*time.Hour), 2)
		booking.Status = string(lifecycle.StatusCompleted)

		return booking
	}

	t.Run("completed unreviewed own booking is reviewable", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completedBooking(), nil)
		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		f.review.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		res, err := f.svc.CanReview(userContext("guest-1", constant.RoleGuest), "booking-1")

		assert.NoError(t, err)
		assert.True(t, res.CanReview)
		assert.Empty(t, res.Reason)
	})

	t.Run("property owner may ask about their own listing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completedBooking(), nil)
		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		f.review.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		res, err := f.svc.CanReview(userContext("owner-1", constant.RoleOwner), "booking-1")

		assert.NoError(t, err)
		assert.True(t, res.CanReview)
	})

	t.Run("incomplete booking is not reviewable", func(t *testing.T) {
		f := newFixture(t)

		booking := completedBooking()
		booking.Status = string(lifecycle.StatusConfirmed)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)

		res, err := f.svc.CanReview(userContext("guest-1", constant.RoleGuest), "booking-1")

		assert.NoError(t, err)
		assert.False(t, res.CanReview)
		assert.Equal(t, "booking is not completed", res.Reason)
	})

	t.Run("already reviewed booking is not reviewable", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completedBooking(), nil)
		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)
		f.review.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		res, err := f.svc.CanReview(userContext("guest-1", constant.RoleGuest), "booking-1")

		assert.NoError(t, err)
		assert.False(t, res.CanReview)
		assert.Equal(t, "booking already reviewed", res.Reason)
	})

	t.Run("another guest's booking is restricted", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completedBooking(), nil)
		f.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProperty(), nil)

		_, err := f.svc.CanReview(userContext("someone-else", constant.RoleGuest), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.CanReview(userContext("guest-1", constant.RoleGuest), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
