package config

import "mathmaster-otp-service/internal/pkg/constvars"

type (
	// DriverConfig holds credentials and endpoints for external systems.
	DriverConfig struct {
		SMTP     SMTP
		Firebase Firebase
		Logger   Logger
	}

	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}

	Firebase struct {
		ServiceAccountKey string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
	}

	App struct {
		Env                     string
		Port                    string
		MaxRequests             int
		ShutdownTimeout         int
		RequestTimeoutInSeconds int
	}
)

// IsProduction reports whether the service runs in production mode, which
// gates the debug otp field in send-otp responses.
func (a App) IsProduction() bool {
	return a.Env == constvars.AppEnvProduction
}
