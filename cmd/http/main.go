package main

import (
	"context"
	"mathmaster-otp-service/internal/app/config"
	"mathmaster-otp-service/internal/app/delivery/http/middlewares"
	"mathmaster-otp-service/internal/app/delivery/http/routers"
	identitydriver "mathmaster-otp-service/internal/app/drivers/identity"
	"mathmaster-otp-service/internal/app/drivers/logger"
	"mathmaster-otp-service/internal/app/services/core/health"
	"mathmaster-otp-service/internal/app/services/core/otp"
	"mathmaster-otp-service/internal/app/services/shared/identity"
	"mathmaster-otp-service/internal/app/services/shared/mailer"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	// Startup precondition: the identity provider credential must be present.
	firebaseAuthClient := identitydriver.NewFirebaseAuthClient(context.Background(), driverConfig, log)

	chiRouter := chi.NewRouter()
	bootstrapTheApp(chiRouter, driverConfig, internalConfig, log, firebaseAuthClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Math Master OTP server is running", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(
	router *chi.Mux,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
	firebaseAuthClient *auth.Client,
) {
	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, internalConfig)

	// Shared services
	mailerFactory := mailer.NewSMTPMailerFactory(driverConfig)
	identityService := identity.NewFirebaseIdentityService(firebaseAuthClient)

	// Health
	healthController := health.NewHealthController()

	// OTP
	otpUsecase := otp.NewOTPUsecase(mailerFactory, identityService, internalConfig, log)
	otpController := otp.NewOTPController(log, internalConfig, otpUsecase)

	routers.SetupRoutes(router, internalConfig, middlewareInstance, healthController, otpController)
}
