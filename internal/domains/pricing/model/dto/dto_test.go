package dto_test

import (
	"testing"
	"time"

	"lodgy/internal/domains/pricing/model"
	"lodgy/internal/domains/pricing/model/dto"
	gModel "lodgy/shared/model"
	"lodgy/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreatePricingRequest_ToModel(t *testing.T) {
	description := "holiday season"
	req := dto.CreatePricingRequest{
		StartDate:     "2026-12-20",
		EndDate:       "2026-12-31",
		PricePerNight: 250,
		Priority:      5,
		Description:   &description,
	}

	startDate := time.Date(2026, 12, 20, 0, 0, 0, 0, timezone.GetLocation())
	endDate := time.Date(2026, 12, 31, 0, 0, 0, 0, timezone.GetLocation())

	pricing := req.ToModel("owner@example.com", "property-1", startDate, endDate)

	assert.NotEmpty(t, pricing.ID, "expected ID to be generated")
	assert.Equal(t, "property-1", pricing.PropertyID)
	assert.Equal(t, startDate, pricing.StartDate)
	assert.Equal(t, endDate, pricing.EndDate)
	assert.Equal(t, 250.0, pricing.PricePerNight)
	assert.Equal(t, 5, pricing.Priority)
	assert.Equal(t, &description, pricing.Description)
	assert.Equal(t, "owner@example.com", pricing.CreatedBy)
	assert.False(t, pricing.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestPricingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	description := "holiday season"
	pricing := model.DynamicPricing{
		ID:            "pricing-1",
		PropertyID:    "property-1",
		StartDate:     time.Date(2026, 12, 20, 0, 0, 0, 0, timezone.GetLocation()),
		EndDate:       time.Date(2026, 12, 31, 0, 0, 0, 0, timezone.GetLocation()),
		PricePerNight: 250,
		Priority:      5,
		Description:   &description,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "owner@example.com",
			ModifiedBy: "owner@example.com",
		},
	}

	var response dto.PricingResponse
	response.FromModel(pricing)

	assert.Equal(t, "pricing-1", response.ID)
	assert.Equal(t, "2026-12-20", response.StartDate)
	assert.Equal(t, "2026-12-31", response.EndDate)
	assert.Equal(t, 250.0, response.PricePerNight)
	assert.Equal(t, 5, response.Priority)
	assert.Equal(t, &description, response.Description)
}

func TestGetPricingsResponse_FromModels(t *testing.T) {
	pricings := []model.DynamicPricing{
		{ID: "pricing-1", PricePerNight: 250},
		{ID: "pricing-2", PricePerNight: 180},
	}

	var response dto.GetPricingsResponse
	response.FromModels(pricings, 2, 10)

	assert.Len(t, response.Pricings, 2)
	assert.Equal(t, 2, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
}
