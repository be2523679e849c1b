package router

import (
	"intake/internal/handlers/auth"
	"intake/internal/handlers/calendar"
	"intake/internal/handlers/democonfig"
	"intake/internal/handlers/demorequest"
	"intake/internal/handlers/health"
	"intake/internal/handlers/user"
	"intake/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	DemoRequest demorequest.Handler
	Calendar    calendar.Handler
	DemoConfig  democonfig.Handler
	Health      health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.APIKey)
			protected.Use(r.AuthMiddleware.Auth)
			protected.Use(r.AuthMiddleware.RBAC)

			r.DomainHandlers.User.Router(protected)
			r.DomainHandlers.DemoRequest.Router(protected)
			r.DomainHandlers.Calendar.Router(protected)
			r.DomainHandlers.DemoConfig.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
