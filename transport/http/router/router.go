package router

import (
	"lodgy/internal/handlers/auth"
	"lodgy/internal/handlers/booking"
	"lodgy/internal/handlers/health"
	"lodgy/internal/handlers/photo"
	"lodgy/internal/handlers/pricing"
	"lodgy/internal/handlers/property"
	"lodgy/internal/handlers/review"
	"lodgy/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Property property.Handler
	Photo    photo.Handler
	Pricing  pricing.Handler
	Booking  booking.Handler
	Review   review.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Photo.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
