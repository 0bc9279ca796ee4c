package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodgy/config"
	"lodgy/infras/otel/mocks"
	cacheMocks "lodgy/shared/cache/mocks"
	gModel "lodgy/shared/model"

	pricingMocks "lodgy/internal/domains/pricing/mocks"
	"lodgy/internal/domains/pricing/model"
	"lodgy/internal/domains/pricing/service"
	propertyMocks "lodgy/internal/domains/property/mocks"
	propertyModel "lodgy/internal/domains/property/model"
)

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)

	return parsed
}

func override(price float64, priority int, start, end string, createdAt time.Time) model.DynamicPricing {
	return model.DynamicPricing{
		ID:            "override-" + start,
		PropertyID:    "property-1",
		StartDate:     date(start),
		EndDate:       date(end),
		PricePerNight: price,
		Priority:      priority,
		Metadata: gModel.Metadata{
			CreatedAt: createdAt,
		},
	}
}

func TestResolveNightRate(t *testing.T) {
	base := 100.0
	older := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		overrides []model.DynamicPricing
		night     string
		want      float64
	}{
		{
			name:      "no overrides falls back to base rate",
			overrides: nil,
			night:     "2026-06-10",
			want:      100,
		},
		{
			name: "single covering override wins",
			overrides: []model.DynamicPricing{
				override(150, 1, "2026-06-01", "2026-06-30", older),
			},
			night: "2026-06-10",
			want:  150,
		},
		{
			name: "override outside range is ignored",
			overrides: []model.DynamicPricing{
				override(150, 1, "2026-07-01", "2026-07-31", older),
			},
			night: "2026-06-10",
			want:  100,
		},
		{
			name: "range bounds are inclusive",
			overrides: []model.DynamicPricing{
				override(150, 1, "2026-06-10", "2026-06-10", older),
			},
			night: "2026-06-10",
			want:  150,
		},
		{
			name: "higher priority wins regardless of price",
			overrides: []model.DynamicPricing{
				override(150, 1, "2026-06-01", "2026-06-30", newer),
				override(200, 2, "2026-06-05", "2026-06-15", older),
			},
			night: "2026-06-10",
			want:  200,
		},
		{
			name: "equal priority breaks tie by newest created_at",
			overrides: []model.DynamicPricing{
				override(150, 1, "2026-06-01", "2026-06-30", older),
				override(180, 1, "2026-06-05", "2026-06-15", newer),
			},
			night: "2026-06-10",
			want:  180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ResolveNightRate(base, tt.overrides, date(tt.night))

			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestQuoteStay(t *testing.T) {
	property := propertyModel.Property{
		ID:                "property-1",
		BasePricePerNight: 100,
		CleaningFee:       25,
		ServiceFeeRate:    0.1,
	}

	t.Run("two nights at override rate", func(t *testing.T) {
		overrides := []model.DynamicPricing{
			override(150, 1, "2026-06-01", "2026-06-30", time.Now()),
		}

		quote := service.QuoteStay(property, overrides, date("2026-06-10"), date("2026-06-12"))

		assert.Equal(t, 2, quote.Nights)
		assert.InDelta(t, 300.0, quote.Subtotal, 0.001)
		assert.InDelta(t, 25.0, quote.CleaningFee, 0.001)
		assert.InDelta(t, 30.0, quote.ServiceFee, 0.001)
		assert.InDelta(t, 355.0, quote.Total, 0.001)
	})

	t.Run("checkout night is not charged", func(t *testing.T) {
		overrides := []model.DynamicPricing{
			override(500, 1, "2026-06-12", "2026-06-12", time.Now()),
		}

		quote := service.QuoteStay(property, overrides, date("2026-06-10"), date("2026-06-12"))

		assert.Equal(t, 2, quote.Nights)
		assert.InDelta(t, 200.0, quote.Subtotal, 0.001)
	})

	t.Run("mixed base and override nights", func(t *testing.T) {
		overrides := []model.DynamicPricing{
			override(150, 1, "2026-06-11", "2026-06-11", time.Now()),
		}

		quote := service.QuoteStay(property, overrides, date("2026-06-10"), date("2026-06-13"))

		assert.Equal(t, 3, quote.Nights)
		assert.InDelta(t, 350.0, quote.Subtotal, 0.001)
		assert.Equal(t, []string{"2026-06-10", "2026-06-11", "2026-06-12"}, []string{
			quote.NightRates[0].Date, quote.NightRates[1].Date, quote.NightRates[2].Date,
		})
	})
}

func TestPricingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPricing(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPropertyRepo, cfg, mockCache, mockOtel)

	property := propertyModel.Property{
		ID:                 "property-1",
		OwnerID:            "owner-1",
		BasePricePerNight:  100,
		CancellationPolicy: "flexible",
	}

	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		setupMock func()
		wantErr   bool
		wantTotal float64
	}{
		{
			name:     "successful quote",
			checkIn:  "2026-06-10",
			checkOut: "2026-06-12",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assert.AnError)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(property, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.DynamicPricing{
						override(150, 1, "2026-06-01", "2026-06-30", time.Now()),
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 300,
		},
		{
			name:      "invalid date order",
			checkIn:   "2026-06-12",
			checkOut:  "2026-06-10",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:     "property not found",
			checkIn:  "2026-06-10",
			checkOut: "2026-06-12",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assert.AnError)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			quote, err := svc.Quote(context.Background(), "property-1", tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.wantTotal, quote.Total, 0.001)
			}
		})
	}
}
