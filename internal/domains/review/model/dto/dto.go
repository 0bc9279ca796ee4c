package dto

import (
	"lodgy/internal/domains/review/model"
	"lodgy/shared"
	gDto "lodgy/shared/dto"
	gModel "lodgy/shared/model"
	"lodgy/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Cleanliness    int     `json:"cleanliness"      validate:"required,min=1,max=5"`
	Communication  int     `json:"communication"    validate:"required,min=1,max=5"`
	RespectRules   int     `json:"respect_rules"    validate:"required,min=1,max=5"`
	Comment        *string `json:"comment"          validate:"omitempty,max=2000"`
	WouldHostAgain bool    `json:"would_host_again"`
}

func (c *CreateReviewRequest) ToModel(user, bookingID, propertyID, guestID, hostID string) model.GuestReview {
	return model.GuestReview{
		ID:             uuid.NewString(),
		BookingID:      bookingID,
		PropertyID:     propertyID,
		GuestID:        guestID,
		HostID:         hostID,
		Cleanliness:    c.Cleanliness,
		Communication:  c.Communication,
		RespectRules:   c.RespectRules,
		OverallRating:  model.OverallRating(c.Cleanliness, c.Communication, c.RespectRules),
		Comment:        c.Comment,
		WouldHostAgain: c.WouldHostAgain,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReviewResponse struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"booking_id"`
	PropertyID     string  `json:"property_id"`
	GuestID        string  `json:"guest_id"`
	HostID         string  `json:"host_id"`
	Cleanliness    int     `json:"cleanliness"`
	Communication  int     `json:"communication"`
	RespectRules   int     `json:"respect_rules"`
	OverallRating  float64 `json:"overall_rating"`
	Comment        *string `json:"comment,omitempty"`
	WouldHostAgain bool    `json:"would_host_again"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.GuestReview) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.PropertyID = model.PropertyID
	r.GuestID = model.GuestID
	r.HostID = model.HostID
	r.Cleanliness = model.Cleanliness
	r.Communication = model.Communication
	r.RespectRules = model.RespectRules
	r.OverallRating = model.OverallRating
	r.Comment = model.Comment
	r.WouldHostAgain = model.WouldHostAgain
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.GuestReview, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, m := range models {
		r.Reviews[i].FromModel(m)
	}
}
