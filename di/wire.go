//go:build wireinject
// +build wireinject

package di

import (
	"intake/config"
	"intake/infras/jwt"
	"intake/infras/kafka"
	"intake/infras/otel"
	"intake/infras/postgres"
	"intake/infras/redis"
	"intake/internal/events"
	"intake/permissions"
	"intake/shared/cache"
	"intake/transport/http"
	"intake/transport/http/middleware"
	"intake/transport/http/router"

	calendarRepository "intake/internal/domains/calendar/repository"
	calendarService "intake/internal/domains/calendar/service"
	demorequestRepository "intake/internal/domains/demorequest/repository"
	demorequestService "intake/internal/domains/demorequest/service"
	demotypeRepository "intake/internal/domains/demotype/repository"
	demotypeService "intake/internal/domains/demotype/service"
	interestRepository "intake/internal/domains/interest/repository"
	interestService "intake/internal/domains/interest/service"

	authService "intake/internal/domains/auth/service"
	userRepository "intake/internal/domains/user/repository"
	userService "intake/internal/domains/user/service"

	authHandler "intake/internal/handlers/auth"
	calendarHandler "intake/internal/handlers/calendar"
	democonfigHandler "intake/internal/handlers/democonfig"
	demorequestHandler "intake/internal/handlers/demorequest"
	healthHandler "intake/internal/handlers/health"
	userHandler "intake/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var demoRequestDomain = wire.NewSet(
	demorequestRepository.New,
	demorequestService.New,
)

var calendarDomain = wire.NewSet(
	calendarRepository.New,
	calendarService.New,
)

var demoConfigDomain = wire.NewSet(
	interestRepository.New,
	interestService.New,
	demotypeRepository.New,
	demotypeService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	demoRequestDomain,
	calendarDomain,
	demoConfigDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	demorequestHandler.New,
	calendarHandler.New,
	democonfigHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
