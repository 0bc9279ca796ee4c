package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodgy/internal/domains/booking/lifecycle"
)

func TestRefundFraction(t *testing.T) {
	checkIn := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		policy string
		lead   time.Duration
		nights int
		want   float64
	}{
		{"flexible 48h out is fully refunded", "flexible", 48 * time.Hour, 3, 1.0},
		{"flexible exactly 24h out is fully refunded", "flexible", 24 * time.Hour, 3, 1.0},
		{"flexible 10h out forfeits first of two nights", "flexible", 10 * time.Hour, 2, 0.5},
		{"flexible 10h out forfeits first of four nights", "flexible", 10 * time.Hour, 4, 0.75},
		{"flexible late one-night stay gets nothing", "flexible", 10 * time.Hour, 1, 0},
		{"moderate 6 days out is fully refunded", "moderate", 144 * time.Hour, 3, 1.0},
		{"moderate exactly 120h out is fully refunded", "moderate", 120 * time.Hour, 3, 1.0},
		{"moderate 48h out is half refunded", "moderate", 48 * time.Hour, 3, 0.5},
		{"moderate exactly 24h out is half refunded", "moderate", 24 * time.Hour, 3, 0.5},
		{"moderate 10h out gets nothing", "moderate", 10 * time.Hour, 3, 0},
		{"strict 31 days out is fully refunded", "strict", 31 * 24 * time.Hour, 3, 1.0},
		{"strict exactly 720h out is fully refunded", "strict", 720 * time.Hour, 3, 1.0},
		{"strict 15 days out is half refunded", "strict", 15 * 24 * time.Hour, 3, 0.5},
		{"strict exactly 336h out is half refunded", "strict", 336 * time.Hour, 3, 0.5},
		{"strict 10 days out gets nothing", "strict", 10 * 24 * time.Hour, 3, 0},
		{"unknown policy behaves like flexible", "unknown", 48 * time.Hour, 3, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cancelAt := checkIn.Add(-tt.lead)
			got := lifecycle.RefundFraction(tt.policy, checkIn, cancelAt, tt.nights)

			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestRefundFractionAfterCheckIn(t *testing.T) {
	checkIn := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	cancelAt := checkIn.Add(2 * time.Hour)

	assert.InDelta(t, 0.5, lifecycle.RefundFraction("flexible", checkIn, cancelAt, 2), 0.0001)
	assert.InDelta(t, 0.0, lifecycle.RefundFraction("moderate", checkIn, cancelAt, 2), 0.0001)
	assert.InDelta(t, 0.0, lifecycle.RefundFraction("strict", checkIn, cancelAt, 2), 0.0001)
}
