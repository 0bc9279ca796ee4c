package dto

import (
	"mime/multipart"

	"lodgy/internal/domains/photo/model"
	"lodgy/shared"
	gDto "lodgy/shared/dto"
	gModel "lodgy/shared/model"
	"lodgy/shared/timezone"

	"github.com/google/uuid"
)

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo"     swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile multipart.File        `json:"-"`
	Caption   *string               `json:"caption,omitempty" validate:"omitempty,max=200"`
	SortOrder int                   `json:"sort_order"        validate:"omitempty,min=0"`
}

func (c *UploadPhotoRequest) ToModel(user, propertyID, url string) model.PropertyPhoto {
	return model.PropertyPhoto{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		URL:        url,
		Caption:    c.Caption,
		SortOrder:  c.SortOrder,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PhotoResponse struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	URL        string  `json:"url"`
	Caption    *string `json:"caption,omitempty"`
	SortOrder  int     `json:"sort_order"`
	gDto.Metadata
}

func (r *PhotoResponse) FromModel(model model.PropertyPhoto) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.URL = model.URL
	r.Caption = model.Caption
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetPhotosResponse struct {
	Photos    []PhotoResponse `json:"photos"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetPhotosResponse) FromModels(models []model.PropertyPhoto, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Photos = make([]PhotoResponse, len(models))
	for i, m := range models {
		r.Photos[i].FromModel(m)
	}
}
