package dto

import (
	"lodgy/internal/domains/pricing/model"
	"lodgy/shared"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	gModel "lodgy/shared/model"
	"lodgy/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreatePricingRequest struct {
	StartDate     string  `json:"start_date"      validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date"        validate:"required,datetime=2006-01-02"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Priority      int     `json:"priority"        validate:"omitempty,min=0"`
	Description   *string `json:"description"     validate:"omitempty,max=255"`
}

func (c *CreatePricingRequest) ToModel(user, propertyID string, startDate, endDate time.Time) model.DynamicPricing {
	return model.DynamicPricing{
		ID:            uuid.NewString(),
		PropertyID:    propertyID,
		StartDate:     startDate,
		EndDate:       endDate,
		PricePerNight: c.PricePerNight,
		Priority:      c.Priority,
		Description:   c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PricingResponse struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"property_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	PricePerNight float64 `json:"price_per_night"`
	Priority      int     `json:"priority"`
	Description   *string `json:"description,omitempty"`
	gDto.Metadata
}

func (r *PricingResponse) FromModel(model model.DynamicPricing) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.PricePerNight = model.PricePerNight
	r.Priority = model.Priority
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetPricingsResponse struct {
	Pricings  []PricingResponse `json:"pricings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPricingsResponse) FromModels(models []model.DynamicPricing, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Pricings = make([]PricingResponse, len(models))
	for i, m := range models {
		r.Pricings[i].FromModel(m)
	}
}

type NightRate struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// QuoteResponse is the full price breakdown for a prospective stay.
type QuoteResponse struct {
	PropertyID  string      `json:"property_id"`
	CheckIn     string      `json:"check_in"`
	CheckOut    string      `json:"check_out"`
	Nights      int         `json:"nights"`
	NightRates  []NightRate `json:"night_rates"`
	Subtotal    float64     `json:"subtotal"`
	CleaningFee float64     `json:"cleaning_fee"`
	ServiceFee  float64     `json:"service_fee"`
	Total       float64     `json:"total"`
}
