package model

import "lodgy/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID                 = "id"
	FieldOwnerID            = "owner_id"
	FieldTitle              = "title"
	FieldDescription        = "description"
	FieldLocation           = "location"
	FieldMaxGuests          = "max_guests"
	FieldBasePricePerNight  = "base_price_per_night"
	FieldCleaningFee        = "cleaning_fee"
	FieldServiceFeeRate     = "service_fee_rate"
	FieldCancellationPolicy = "cancellation_policy"
	FieldActive             = "active"
)

type Property struct {
	ID                 string  `db:"id"`
	OwnerID            string  `db:"owner_id"`
	Title              string  `db:"title"`
	Description        *string `db:"description"`
	Location           string  `db:"location"`
	MaxGuests          int     `db:"max_guests"`
	BasePricePerNight  float64 `db:"base_price_per_night"`
	CleaningFee        float64 `db:"cleaning_fee"`
	ServiceFeeRate     float64 `db:"service_fee_rate"`
	CancellationPolicy string  `db:"cancellation_policy"`
	Active             bool    `db:"active"`
	model.Metadata
}
