//go:build wireinject
// +build wireinject

package di

import (
	"lodgy/config"
	"lodgy/infras/jwt"
	"lodgy/infras/kafka"
	"lodgy/infras/otel"
	"lodgy/infras/postgres"
	"lodgy/infras/redis"
	"lodgy/infras/s3"
	"lodgy/permissions"
	"lodgy/shared/cache"
	"lodgy/transport/http"
	"lodgy/transport/http/middleware"
	"lodgy/transport/http/router"

	"github.com/google/wire"

	authService "lodgy/internal/domains/auth/service"
	bookingRepository "lodgy/internal/domains/booking/repository"
	bookingService "lodgy/internal/domains/booking/service"
	photoRepository "lodgy/internal/domains/photo/repository"
	photoService "lodgy/internal/domains/photo/service"
	pricingRepository "lodgy/internal/domains/pricing/repository"
	pricingService "lodgy/internal/domains/pricing/service"
	propertyRepository "lodgy/internal/domains/property/repository"
	propertyService "lodgy/internal/domains/property/service"
	reviewRepository "lodgy/internal/domains/review/repository"
	reviewService "lodgy/internal/domains/review/service"
	userRepository "lodgy/internal/domains/user/repository"
	userService "lodgy/internal/domains/user/service"

	authHandler "lodgy/internal/handlers/auth"
	bookingHandler "lodgy/internal/handlers/booking"
	healthHandler "lodgy/internal/handlers/health"
	photoHandler "lodgy/internal/handlers/photo"
	pricingHandler "lodgy/internal/handlers/pricing"
	propertyHandler "lodgy/internal/handlers/property"
	reviewHandler "lodgy/internal/handlers/review"
	userHandler "lodgy/internal/handlers/user"
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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var photoDomain = wire.NewSet(
	photoRepository.New,
	photoService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	propertyDomain,
	photoDomain,
	pricingDomain,
	bookingDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	propertyHandler.New,
	photoHandler.New,
	pricingHandler.New,
	bookingHandler.New,
	reviewHandler.New,
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
