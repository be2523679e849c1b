package calendar

import (
	"net/http"

	"intake/infras/otel"
	"intake/internal/domains/calendar/model/dto"
	"intake/internal/domains/calendar/service"
	"intake/shared/constant"
	"intake/shared/validator"
	"intake/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/demo/config/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailableDates)
		routerGroup.Post("/check", handler.CheckDateAvailability)
		routerGroup.Post("/override", handler.OverrideDate)
	})
}

// GetAvailableDates lists bookable dates for the demo scheduling step.
// @Summary Get available demo dates
// @Description List all future weekday dates with remaining booking capacity, up to the configured window. Weekend and past dates are excluded.
// @Tags Calendar
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.GetCalendarResponse} "Available dates"
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/calendar [get]
func (handler *Handler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableDates")
	defer scope.End()

	dates, err := handler.service.AvailableDates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}

// CheckDateAvailability reports availability for one date.
// @Summary Check a date's availability
// @Description Check whether a specific date can still take demo bookings, with its remaining capacity and the reason when unavailable.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body dto.CheckDateRequest true "Check Date Request"
// @Success 200 {object} response.Envelope{data=dto.AvailabilityResponse} "Date availability"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/calendar/check [post]
func (handler *Handler) CheckDateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckDateAvailability")
	defer scope.End()

	req := dto.CheckDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.Check(ctx, req.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check date availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Date availability checked for " + req.Date)

	response.WithJSON(w, http.StatusOK, availability)
}

// OverrideDate creates or replaces the availability row for a date.
// @Summary Override a date's availability
// @Description Force a date open or closed, optionally adjusting its capacity and recording a reason. Staff only.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body dto.OverrideDateRequest true "Override Date Request"
// @Success 200 {object} response.Envelope "Date availability overridden"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/demo/config/calendar/override [post]
// @Security BearerAuth
func (handler *Handler) OverrideDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OverrideDate")
	defer scope.End()

	req := dto.OverrideDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Override(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to override date availability")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Date availability overridden by user " + user)

	response.WithMessage(w, http.StatusOK, "Date availability overridden successfully")
}
