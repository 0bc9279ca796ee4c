package model

import (
	"lodgy/internal/domains/booking/lifecycle"
	"lodgy/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldPropertyID         = "property_id"
	FieldGuestID            = "guest_id"
	FieldCheckIn            = "check_in"
	FieldCheckOut           = "check_out"
	FieldGuests             = "guests"
	FieldPricePerNight      = "price_per_night"
	FieldNights             = "nights"
	FieldTotalPrice         = "total_price"
	FieldServiceFee         = "service_fee"
	FieldCleaningFee        = "cleaning_fee"
	FieldFinalPrice         = "final_price"
	FieldStatus             = "status"
	FieldPaymentStatus      = "payment_status"
	FieldCancelledBy        = "cancelled_by"
	FieldCancelledAt        = "cancelled_at"
	FieldCancellationReason = "cancellation_reason"
	FieldRefundAmount       = "refund_amount"
	FieldCompletedAt        = "completed_at"
)

// Booking carries the full price breakdown at booking time so later rate
// changes never alter what the guest agreed to pay.
// final_price = total_price + service_fee + cleaning_fee.
type Booking struct {
	ID                 string     `db:"id"`
	PropertyID         string     `db:"property_id"`
	GuestID            string     `db:"guest_id"`
	CheckIn            time.Time  `db:"check_in"`
	CheckOut           time.Time  `db:"check_out"`
	Guests             int        `db:"guests"`
	PricePerNight      float64    `db:"price_per_night"`
	Nights             int        `db:"nights"`
	TotalPrice         float64    `db:"total_price"`
	ServiceFee         float64    `db:"service_fee"`
	CleaningFee        float64    `db:"cleaning_fee"`
	FinalPrice         float64    `db:"final_price"`
	Status             string     `db:"status"`
	PaymentStatus      string     `db:"payment_status"`
	CancelledBy        *string    `db:"cancelled_by"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	CancellationReason *string    `db:"cancellation_reason"`
	RefundAmount       *float64   `db:"refund_amount"`
	CompletedAt        *time.Time `db:"completed_at"`
	model.Metadata
}

func (b Booking) LifecycleStatus() lifecycle.Status {
	return lifecycle.Status(b.Status)
}
