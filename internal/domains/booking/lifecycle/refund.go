package lifecycle

import (
	"lodgy/shared/constant"
	"time"
)

const (
	flexibleFullRefundLead = 24 * time.Hour

	moderateFullRefundLead = 120 * time.Hour
	moderateHalfRefundLead = 24 * time.Hour

	strictFullRefundLead = 720 * time.Hour
	strictHalfRefundLead = 336 * time.Hour
)

// RefundFraction returns the share of the paid total refunded when a booking
// is cancelled at cancelAt. Lead time is measured against check-in; nights is
// the stay length. An unrecognized policy falls back to flexible.
func RefundFraction(policy string, checkIn, cancelAt time.Time, nights int) float64 {
	lead := checkIn.Sub(cancelAt)

	switch policy {
	case constant.CancellationPolicyModerate:
		switch {
		case lead >= moderateFullRefundLead:
			return 1.0
		case lead >= moderateHalfRefundLead:
			return 0.5
		default:
			return 0
		}
	case constant.CancellationPolicyStrict:
		switch {
		case lead >= strictFullRefundLead:
			return 1.0
		case lead >= strictHalfRefundLead:
			return 0.5
		default:
			return 0
		}
	default:
		if lead >= flexibleFullRefundLead {
			return 1.0
		}

		// Late flexible cancellations forfeit the first night.
		if nights <= 1 {
			return 0
		}

		return 1.0 - 1.0/float64(nights)
	}
}
