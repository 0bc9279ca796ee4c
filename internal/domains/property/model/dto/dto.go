package dto

import (
	"lodgy/internal/domains/property/model"
	"lodgy/shared"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	gModel "lodgy/shared/model"
	"lodgy/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Title              string  `json:"title"                validate:"required,max=150"`
	Description        *string `json:"description,omitempty"`
	Location           string  `json:"location"             validate:"required,max=150"`
	MaxGuests          int     `json:"max_guests"           validate:"required,min=1"`
	BasePricePerNight  float64 `json:"base_price_per_night" validate:"required,gt=0"`
	CleaningFee        float64 `json:"cleaning_fee"         validate:"omitempty,gte=0"`
	ServiceFeeRate     float64 `json:"service_fee_rate"     validate:"omitempty,gte=0,lte=1"`
	CancellationPolicy string  `json:"cancellation_policy"  validate:"omitempty,oneof=flexible moderate strict"`
	Active             *bool   `json:"active,omitempty"`
}

func (c *CreatePropertyRequest) ToModel(user, ownerID string) model.Property {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	policy := c.CancellationPolicy
	if policy == "" {
		policy = constant.CancellationPolicyFlexible
	}

	return model.Property{
		ID:                 uuid.NewString(),
		OwnerID:            ownerID,
		Title:              c.Title,
		Description:        c.Description,
		Location:           c.Location,
		MaxGuests:          c.MaxGuests,
		BasePricePerNight:  c.BasePricePerNight,
		CleaningFee:        c.CleaningFee,
		ServiceFeeRate:     c.ServiceFeeRate,
		CancellationPolicy: policy,
		Active:             active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePropertyRequest struct {
	Title              string   `db:"title"                json:"title"                validate:"omitempty,max=150"`
	Description        *string  `db:"description"          json:"description"`
	Location           string   `db:"location"             json:"location"             validate:"omitempty,max=150"`
	MaxGuests          *int     `db:"max_guests"           json:"max_guests"           validate:"omitempty,min=1"`
	BasePricePerNight  *float64 `db:"base_price_per_night" json:"base_price_per_night" validate:"omitempty,gt=0"`
	CleaningFee        *float64 `db:"cleaning_fee"         json:"cleaning_fee"         validate:"omitempty,gte=0"`
	ServiceFeeRate     *float64 `db:"service_fee_rate"     json:"service_fee_rate"     validate:"omitempty,gte=0,lte=1"`
	CancellationPolicy string   `db:"cancellation_policy"  json:"cancellation_policy"  validate:"omitempty,oneof=flexible moderate strict"`
	Active             *bool    `db:"active"               json:"active"`
}

type PropertyResponse struct {
	ID                 string  `json:"id"`
	OwnerID            string  `json:"owner_id"`
	Title              string  `json:"title"`
	Description        *string `json:"description,omitempty"`
	Location           string  `json:"location"`
	MaxGuests          int     `json:"max_guests"`
	BasePricePerNight  float64 `json:"base_price_per_night"`
	CleaningFee        float64 `json:"cleaning_fee"`
	ServiceFeeRate     float64 `json:"service_fee_rate"`
	CancellationPolicy string  `json:"cancellation_policy"`
	Active             bool    `json:"active"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.OwnerID = model.OwnerID
	r.Title = model.Title
	r.Description = model.Description
	r.Location = model.Location
	r.MaxGuests = model.MaxGuests
	r.BasePricePerNight = model.BasePricePerNight
	r.CleaningFee = model.CleaningFee
	r.ServiceFeeRate = model.ServiceFeeRate
	r.CancellationPolicy = model.CancellationPolicy
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
