package model

import (
	"math"

	"lodgy/shared/model"
)

const (
	TableName  = "guest_reviews"
	EntityName = "review"

	FieldID             = "id"
	FieldBookingID      = "booking_id"
	FieldPropertyID     = "property_id"
	FieldGuestID        = "guest_id"
	FieldHostID         = "host_id"
	FieldCleanliness    = "cleanliness"
	FieldCommunication  = "communication"
	FieldRespectRules   = "respect_rules"
	FieldOverallRating  = "overall_rating"
	FieldComment        = "comment"
	FieldWouldHostAgain = "would_host_again"
)

// GuestReview is the host's review of a guest, one per booking.
type GuestReview struct {
	ID             string  `db:"id"`
	BookingID      string  `db:"booking_id"`
	PropertyID     string  `db:"property_id"`
	GuestID        string  `db:"guest_id"`
	HostID         string  `db:"host_id"`
	Cleanliness    int     `db:"cleanliness"`
	Communication  int     `db:"communication"`
	RespectRules   int     `db:"respect_rules"`
	OverallRating  float64 `db:"overall_rating"`
	Comment        *string `db:"comment"`
	WouldHostAgain bool    `db:"would_host_again"`
	model.Metadata
}

// OverallRating is the mean of the three category ratings, rounded to one
// decimal place.
func OverallRating(cleanliness, communication, respectRules int) float64 {
	mean := float64(cleanliness+communication+respectRules) / 3

	return math.Round(mean*10) / 10
}
