package dto

import (
	"lodgy/internal/domains/booking/lifecycle"
	"lodgy/internal/domains/booking/model"
	pricingDto "lodgy/internal/domains/pricing/model/dto"
	"lodgy/shared"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	gModel "lodgy/shared/model"
	"lodgy/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	CheckIn    string `json:"check_in"    validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out"   validate:"required,datetime=2006-01-02"`
	Guests     int    `json:"guests"      validate:"required,min=1"`
}

// ToModel freezes the quoted breakdown onto the booking so later pricing
// changes never affect it.
func (c *CreateBookingRequest) ToModel(user, guestID string, checkIn, checkOut time.Time, quote pricingDto.QuoteResponse) model.Booking {
	pricePerNight := 0.0
	if len(quote.NightRates) > 0 {
		pricePerNight = quote.NightRates[0].Rate
	}

	return model.Booking{
		ID:            uuid.NewString(),
		PropertyID:    c.PropertyID,
		GuestID:       guestID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        c.Guests,
		PricePerNight: pricePerNight,
		Nights:        quote.Nights,
		TotalPrice:    quote.Subtotal,
		ServiceFee:    quote.ServiceFee,
		CleaningFee:   quote.CleaningFee,
		FinalPrice:    quote.Total,
		Status:        string(lifecycle.StatusPending),
		PaymentStatus: string(lifecycle.PaymentPending),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID                 string   `json:"id"`
	PropertyID         string   `json:"property_id"`
	GuestID            string   `json:"guest_id"`
	CheckIn            string   `json:"check_in"`
	CheckOut           string   `json:"check_out"`
	Guests             int      `json:"guests"`
	PricePerNight      float64  `json:"price_per_night"`
	Nights             int      `json:"nights"`
	TotalPrice         float64  `json:"total_price"`
	ServiceFee         float64  `json:"service_fee"`
	CleaningFee        float64  `json:"cleaning_fee"`
	FinalPrice         float64  `json:"final_price"`
	Status             string   `json:"status"`
	PaymentStatus      string   `json:"payment_status"`
	CancelledBy        *string  `json:"cancelled_by,omitempty"`
	CancelledAt        *string  `json:"cancelled_at,omitempty"`
	CancellationReason *string  `json:"cancellation_reason,omitempty"`
	RefundAmount       *float64 `json:"refund_amount,omitempty"`
	CompletedAt        *string  `json:"completed_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.GuestID = model.GuestID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = model.Guests
	r.PricePerNight = model.PricePerNight
	r.Nights = model.Nights
	r.TotalPrice = model.TotalPrice
	r.ServiceFee = model.ServiceFee
	r.CleaningFee = model.CleaningFee
	r.FinalPrice = model.FinalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.CancelledBy = model.CancelledBy
	r.CancellationReason = model.CancellationReason
	r.RefundAmount = model.RefundAmount

	if model.CancelledAt != nil {
		cancelledAt := model.CancelledAt.Format(constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	if model.CompletedAt != nil {
		completedAt := model.CompletedAt.Format(constant.DateFormat)
		r.CompletedAt = &completedAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type CancelBookingResponse struct {
	Booking      BookingResponse `json:"booking"`
	RefundAmount float64         `json:"refund_amount"`
}

type PaymentResultRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=paid failed"`
}

type CanReviewResponse struct {
	CanReview bool   `json:"can_review"`
	Reason    string `json:"reason,omitempty"`
}

type SweepElapsedResponse struct {
	Started   int `json:"started"`
	Completed int `json:"completed"`
}

// BookingEvent is the payload published to the booking topics.
type BookingEvent struct {
	BookingID     string   `json:"booking_id"`
	PropertyID    string   `json:"property_id"`
	GuestID       string   `json:"guest_id"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"payment_status"`
	RefundAmount  *float64 `json:"refund_amount,omitempty"`
	OccurredAt    string   `json:"occurred_at"`
}

func NewBookingEvent(booking model.Booking, status, paymentStatus string, refundAmount *float64) BookingEvent {
	return BookingEvent{
		BookingID:     booking.ID,
		PropertyID:    booking.PropertyID,
		GuestID:       booking.GuestID,
		Status:        status,
		PaymentStatus: paymentStatus,
		RefundAmount:  refundAmount,
		OccurredAt:    timezone.Now().Format(constant.DateFormat),
	}
}
