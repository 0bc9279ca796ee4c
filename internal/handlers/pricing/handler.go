package pricing

import (
	"lodgy/infras/otel"
	"lodgy/internal/domains/pricing/model/dto"
	"lodgy/internal/domains/pricing/service"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	"lodgy/shared/validator"
	"lodgy/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/properties/{id}/pricing", func(r chi.Router) {
		r.Post("/", handler.CreatePricing)
		r.Get("/", handler.GetPricings)
		r.Delete("/{pricingID}", handler.DeletePricing)
	})

	r.Get("/properties/{id}/quote", handler.GetQuote)
}

// CreatePricing creates a dynamic pricing override for a property.
// @Summary Create a pricing override
// @Description Create a date-ranged nightly rate override for a property.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.CreatePricingRequest true "Create Pricing Request"
// @Success 201 {object} response.Data[dto.PricingResponse] "Pricing override created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/pricing [post]
// @Security BearerAuth
func (handler *Handler) CreatePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePricing")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreatePricingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pricing override")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pricing override created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPricings retrieves the pricing overrides of a property.
// @Summary Get pricing overrides
// @Description Retrieve the dynamic pricing overrides of a property.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPricingsResponse] "List of pricing overrides"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/pricing [get]
// @Security BearerAuth
func (handler *Handler) GetPricings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricings")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	pricings, err := handler.service.GetAllByProperty(ctx, queryParams, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing overrides")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing overrides retrieved successfully")

	response.WithJSON(w, http.StatusOK, pricings)
}

// DeletePricing deletes a pricing override by its ID.
// @Summary Delete a pricing override
// @Description Delete a dynamic pricing override from a property.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param pricingID path string true "Pricing Override ID"
// @Success 200 {object} response.Message "Pricing override deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/pricing/{pricingID} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePricing")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)
	pricingID := chi.URLParam(r, "pricingID")

	if err := handler.service.Delete(ctx, propertyID, pricingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pricing override")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pricing override deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Pricing override deleted successfully")
}

// GetQuote prices a prospective stay.
// @Summary Quote a stay
// @Description Price every night of a prospective stay and total it with fees.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Stay quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/quote [get]
func (handler *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)
	checkIn := r.URL.Query().Get("check_in")
	checkOut := r.URL.Query().Get("check_out")

	quote, err := handler.service.Quote(ctx, propertyID, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay quoted successfully")

	response.WithJSON(w, http.StatusOK, quote)
}
