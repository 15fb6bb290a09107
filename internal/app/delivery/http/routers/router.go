package routers

import (
	"mathmaster-otp-service/internal/app/config"
	"mathmaster-otp-service/internal/app/delivery/http/middlewares"
	"mathmaster-otp-service/internal/app/services/core/health"
	"mathmaster-otp-service/internal/app/services/core/otp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *health.HealthController,
	otpController *otp.OTPController,
) {
	// The reference deployment accepts cross-origin requests from any origin.
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", healthController.Check)
	attachOTPRoutes(router, otpController)
}
