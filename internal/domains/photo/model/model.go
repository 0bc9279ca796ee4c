package model

import "lodgy/shared/model"

const (
	TableName  = "property_photos"
	EntityName = "photo"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldURL        = "url"
	FieldCaption    = "caption"
	FieldSortOrder  = "sort_order"
)

type PropertyPhoto struct {
	ID         string  `db:"id"`
	PropertyID string  `db:"property_id"`
	URL        string  `db:"url"`
	Caption    *string `db:"caption"`
	SortOrder  int     `db:"sort_order"`
	model.Metadata
}
