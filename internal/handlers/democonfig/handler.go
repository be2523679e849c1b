package democonfig

import (
	"net/http"

	"intake/infras/otel"
	demotypeDto "intake/internal/domains/demotype/model/dto"
	demotypeService "intake/internal/domains/demotype/service"
	interestDto "intake/internal/domains/interest/model/dto"
	interestService "intake/internal/domains/interest/service"
	"intake/shared/constant"
	"intake/shared/validator"
	"intake/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler serves the intake form's option catalogs: areas of interest and
// demo modalities. The read endpoints are public; mutations are staff only.
type Handler struct {
	interests interestService.Interest
	demoTypes demotypeService.DemoType
	otel      otel.Otel
}

func New(interests interestService.Interest, demoTypes demotypeService.DemoType, otel otel.Otel) Handler {
	return Handler{
		interests: interests,
		demoTypes: demoTypes,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/demo/config", func(routerGroup chi.Router) {
		routerGroup.Get("/interests", handler.GetInterests)
		routerGroup.Post("/interests", handler.CreateInterest)
		routerGroup.Put("/interests/{id}", handler.UpdateInterest)
		routerGroup.Delete("/interests/{id}", handler.DeleteInterest)

		routerGroup.Get("/types", handler.GetDemoTypes)
		routerGroup.Post("/types", handler.CreateDemoType)
		routerGroup.Put("/types/{id}", handler.UpdateDemoType)
		routerGroup.Delete("/types/{id}", handler.DeleteDemoType)
	})
}

// GetInterests lists the active areas of interest.
// @Summary Get interest options
// @Description List the active areas of interest offered on the intake form.
// @Tags DemoConfig
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope{data=interestDto.GetInterestsResponse} "Interest options"
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/interests [get]
func (handler *Handler) GetInterests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInterests")
	defer scope.End()

	interests, err := handler.interests.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get interests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Interests retrieved successfully")

	response.WithJSON(w, http.StatusOK, interests)
}

// CreateInterest adds a new area of interest.
// @Summary Create an interest option
// @Description Add a new area of interest to the intake form. Staff only.
// @Tags DemoConfig
// @Accept json
// @Produce json
// @Param request body interestDto.CreateInterestRequest true "Create Interest Request"
// @Success 201 {object} response.Envelope "Interest created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/interests [post]
// @Security BearerAuth
func (handler *Handler) CreateInterest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInterest")
	defer scope.End()

	req := interestDto.CreateInterestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.interests.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create interest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Interest created successfully")

	response.WithMessage(w, http.StatusCreated, "Interest created successfully")
}

// UpdateInterest updates an existing area of interest.
// @Summary Update an interest option
// @Description Update an existing area of interest. Staff only.
// @Tags DemoConfig
// @Accept json
// @Produce json
// @Param id path string true "Interest ID"
// @Param request body interestDto.UpdateInterestRequest true "Update Interest Request"
// @Success 200 {object} response.Envelope "Interest updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/interests/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateInterest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInterest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := interestDto.UpdateInterestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.interests.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update interest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Interest updated successfully")

	response.WithMessage(w, http.StatusOK, "Interest updated successfully")
}

// DeleteInterest removes an area of interest.
// @Summary Delete an interest option
// @Description Remove an area of interest from the intake form. Staff only.
// @Tags DemoConfig
// @Accept json
// @Produce json
// @Param id path string true "Interest ID"
// @Success 200 {object} response.Envelope "Interest deleted successfully"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/interests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInterest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInterest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.interests.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete interest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Interest deleted successfully")

	response.WithMessage(w, http.StatusOK, "Interest deleted successfully")
}

// GetDemoTypes lists the active demo modalities.
// @Summary Get demo type options
// @Description List the active demo modalities offered on the scheduling step.
// @Tags DemoConfig
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope{data=demotypeDto.GetDemoTypesResponse} "Demo type options"
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/types [get]
func (handler *Handler) GetDemoTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDemoTypes")
	defer scope.End()

	demoTypes, err := handler.demoTypes.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get demo types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Demo types retrieved successfully")

	response.WithJSON(w, http.StatusOK, demoTypes)
}

// CreateDemoType adds a new demo modality.
// @Summary Create a demo type option
// @Description Add a new demo modality with its duration. Staff only.
// @Tags DemoConfig
// @Accept json
// @Produce json
// @Param request body demotypeDto.CreateDemoTypeRequest true "Create Demo Type Request"
// @Success 201 {object} response.Envelope "Demo type created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/types [post]
// @Security BearerAuth
func (handler *Handler) CreateDemoType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDemoType")
	defer scope.End()

	req := demotypeDto.CreateDemoTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.demoTypes.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create demo type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Demo type created successfully")

	response.WithMessage(w, http.StatusCreated, "Demo type created successfully")
}

// UpdateDemoType updates an existing demo modality.
// @Summary Update a demo type option
// @Description Update an existing demo modality. Staff only.
// @Tags DemoConfig
// @Accept json
// @Produce json
// @Param id path string true "Demo Type ID"
// @Param request body demotypeDto.UpdateDemoTypeRequest true "Update Demo Type Request"
// @Success 200 {object} response.Envelope "Demo type updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/types/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateDemoType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDemoType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := demotypeDto.UpdateDemoTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.demoTypes.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update demo type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Demo type updated successfully")

	response.WithMessage(w, http.StatusOK, "Demo type updated successfully")
}

// DeleteDemoType removes a demo modality.
// @Summary Delete a demo type option
// @Description Remove a demo modality from the scheduling step. Staff only.
// @Tags DemoConfig
// @Accept json
// @Produce json
// @Param id path string true "Demo Type ID"
// @Success 200 {object} response.Envelope "Demo type deleted successfully"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDemoType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDemoType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.demoTypes.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete demo type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Demo type deleted successfully")

	response.WithMessage(w, http.StatusOK, "Demo type deleted successfully")
}
