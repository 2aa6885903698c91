package routers

import (
	"fmt"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/delivery/http/middlewares"
	"vaxtrack-service/internal/app/services/auth"
	"vaxtrack-service/internal/app/services/dashboard"
	"vaxtrack-service/internal/app/services/practitioners"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	practitionerController *practitioners.PractitionerController,
	dashboardController *dashboard.DashboardController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, authController)
			})

			r.Route("/practitioner", func(r chi.Router) {
				r.Use(middlewares.Authenticate)
				attachPractitionerRoutes(r, practitionerController)
				attachDashboardRoutes(r, dashboardController)
			})
		})
	})
}
