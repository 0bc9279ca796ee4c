package model

import (
	"lodgy/shared/constant"
	"lodgy/shared/model"
	"time"
)

const (
	TableName  = "dynamic_pricing"
	EntityName = "pricing"

	FieldID            = "id"
	FieldPropertyID    = "property_id"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldPricePerNight = "price_per_night"
	FieldPriority      = "priority"
	FieldDescription   = "description"
)

// DynamicPricing is a nightly rate override for a property over an inclusive
// date range. Overlapping rows are resolved by priority, then recency.
type DynamicPricing struct {
	ID            string    `db:"id"`
	PropertyID    string    `db:"property_id"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	PricePerNight float64   `db:"price_per_night"`
	Priority      int       `db:"priority"`
	Description   *string   `db:"description"`
	model.Metadata
}

// Covers reports whether the override applies to the given night. Dates are
// compared by calendar day so the stored timezone does not matter.
func (p DynamicPricing) Covers(night time.Time) bool {
	day := night.Format(constant.DateOnlyFormat)

	return day >= p.StartDate.Format(constant.DateOnlyFormat) && day <= p.EndDate.Format(constant.DateOnlyFormat)
}
