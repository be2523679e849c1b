package health

import (
	"net/http"

	"intake/infras/postgres"
	"intake/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{db: db}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports service liveness.
// @Summary Health check
// @Description Report whether the service and its database connection are healthy.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Envelope "Service is healthy"
// @Failure 503 {object} response.Envelope
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: database unreachable")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "ok")
}
