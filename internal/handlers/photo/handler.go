package photo

import (
	"lodgy/infras/otel"
	"lodgy/internal/domains/photo/model/dto"
	"lodgy/internal/domains/photo/service"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	"lodgy/shared/validator"
	"lodgy/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Photo
	otel    otel.Otel
}

func New(service service.Photo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/properties/{id}/photos", func(r chi.Router) {
		r.Post("/", handler.UploadPhoto)
		r.Get("/", handler.GetPhotos)
		r.Delete("/{photoID}", handler.DeletePhoto)
	})
}

// UploadPhoto handles the upload of a property photo.
// @Summary Upload a property photo
// @Description Upload a photo for a property and store it in object storage.
// @Tags Photo
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param file formData file true "Photo file (png or jpeg, max 5 MB)"
// @Param caption formData string false "Photo caption"
// @Param sort_order formData int false "Display order"
// @Success 201 {object} response.Data[dto.PhotoResponse] "Photo uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/photos [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		Photo:     fileHeader,
		PhotoFile: file,
	}

	if caption := r.FormValue("caption"); caption != "" {
		req.Caption = &caption
	}

	if sortOrder := r.FormValue("sort_order"); sortOrder != "" {
		req.SortOrder, _ = strconv.Atoi(sortOrder)
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPhotos retrieves all photos of a property.
// @Summary Get property photos
// @Description Retrieve all photos of a property ordered for display.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPhotosResponse] "List of photos"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/photos [get]
func (handler *Handler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhotos")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	photos, err := handler.service.GetAllByProperty(ctx, queryParams, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get photos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photos retrieved successfully")

	response.WithJSON(w, http.StatusOK, photos)
}

// DeletePhoto deletes a property photo by its ID.
// @Summary Delete a property photo
// @Description Delete a photo from a property and remove it from object storage.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param photoID path string true "Photo ID"
// @Success 200 {object} response.Message "Photo deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/photos/{photoID} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)
	photoID := chi.URLParam(r, "photoID")

	if err := handler.service.Delete(ctx, propertyID, photoID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Photo deleted successfully")
}
