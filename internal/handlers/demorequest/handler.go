package demorequest

import (
	"net/http"

	"intake/infras/otel"
	"intake/internal/domains/demorequest/model"
	"intake/internal/domains/demorequest/model/dto"
	"intake/internal/domains/demorequest/service"
	"intake/shared/constant"
	gDto "intake/shared/dto"
	"intake/shared/validator"
	"intake/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.DemoRequest
	otel    otel.Otel
}

func New(service service.DemoRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/demo", func(routerGroup chi.Router) {
		routerGroup.Post("/request", handler.SubmitDemoRequest)
		routerGroup.Get("/requests", handler.GetDemoRequests)
		routerGroup.Get("/requests/{id}", handler.GetDemoRequestByID)
		routerGroup.Patch("/requests/{id}", handler.UpdateDemoRequest)
		routerGroup.Delete("/requests/{id}", handler.DeleteDemoRequest)
		routerGroup.Get("/stats", handler.GetDemoRequestStats)
	})
}

// SubmitDemoRequest handles a public demo request submission.
// @Summary Submit a demo request
// @Description Submit a new demo request from the public intake form. When a preferred date is given, one booking slot for that date is reserved atomically.
// @Tags DemoRequest
// @Accept json
// @Produce json
// @Param request body dto.SubmitDemoRequestRequest true "Submit Demo Request"
// @Success 201 {object} response.Envelope{data=dto.DemoRequestResponse} "Demo request created"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/request [post]
func (handler *Handler) SubmitDemoRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitDemoRequest")
	defer scope.End()

	req := dto.SubmitDemoRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit demo request")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Demo request submitted for " + res.Email)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetDemoRequests retrieves all demo requests based on query parameters.
// @Summary Get all demo requests
// @Description Retrieve all demo requests with optional filtering and pagination. Staff only.
// @Tags DemoRequest
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, scheduled, completed, cancelled)"
// @Param demo_type query string false "Filter by demo type"
// @Param preferred_date query string false "Filter by preferred date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope{data=dto.GetDemoRequestsResponse} "List of demo requests"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/requests [get]
// @Security BearerAuth
func (handler *Handler) GetDemoRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDemoRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	demoType := r.URL.Query().Get(model.FieldDemoType)
	preferredDate := r.URL.Query().Get(model.FieldPreferredDate)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if demoType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDemoType,
			Operator: gDto.FilterOperatorEq,
			Value:    demoType,
			Table:    model.TableName,
		})
	}

	if preferredDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPreferredDate,
			Operator: gDto.FilterOperatorEq,
			Value:    preferredDate,
			Table:    model.TableName,
		})
	}

	demoRequests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get demo requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Demo requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, demoRequests)
}

// GetDemoRequestByID retrieves a demo request by its ID.
// @Summary Get a demo request by ID
// @Description Retrieve a demo request by its unique identifier. Staff only.
// @Tags DemoRequest
// @Accept json
// @Produce json
// @Param id path string true "Demo Request ID"
// @Success 200 {object} response.Envelope{data=dto.DemoRequestResponse} "Demo request details"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDemoRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDemoRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	demoRequest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get demo request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Demo request retrieved successfully")

	response.WithJSON(w, http.StatusOK, demoRequest)
}

// UpdateDemoRequest updates an existing demo request by its ID.
// @Summary Update a demo request by ID
// @Description Update the lifecycle status, confirmed schedule, or internal notes of a demo request. Staff only.
// @Tags DemoRequest
// @Accept json
// @Produce json
// @Param id path string true "Demo Request ID"
// @Param request body dto.UpdateDemoRequestRequest true "Update Demo Request"
// @Success 200 {object} response.Envelope "Demo request updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/requests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDemoRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDemoRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDemoRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update demo request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Demo request updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Demo request updated successfully")
}

// DeleteDemoRequest deletes a demo request by its ID.
// @Summary Delete a demo request by ID
// @Description Delete a demo request using its unique identifier. Staff only.
// @Tags DemoRequest
// @Accept json
// @Produce json
// @Param id path string true "Demo Request ID"
// @Success 200 {object} response.Envelope "Demo request deleted successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/requests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDemoRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDemoRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete demo request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Demo request deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Demo request deleted successfully")
}

// GetDemoRequestStats returns demo request counts grouped by status.
// @Summary Get demo request statistics
// @Description Retrieve total demo request counts per lifecycle status. Staff only.
// @Tags DemoRequest
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.DemoRequestStatsResponse} "Demo request statistics"
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/stats [get]
// @Security BearerAuth
func (handler *Handler) GetDemoRequestStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDemoRequestStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get demo request stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Demo request stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}
