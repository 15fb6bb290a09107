package config

import (
	"mathmaster-otp-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "smtp.gmail.com"),
			Port:     utils.GetEnvInt("SMTP_PORT", 587),
			Username: resolveMailCredential("EMAIL_USER2", "EMAIL_USER"),
			Password: resolveMailCredential("EMAIL_PASS2", "EMAIL_PASS"),
		},
		Firebase: Firebase{
			ServiceAccountKey: utils.GetEnvString("SERVICE_ACCOUNT_KEY", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("NODE_ENV", "development"),
			Port:                    ":" + utils.GetEnvString("PORT", "8081"),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
	}
}

// resolveMailCredential prefers the secondary-named variable and falls back to
// the original one, mirroring the EMAIL_USER2 || EMAIL_USER deployment setup.
func resolveMailCredential(preferred, fallback string) string {
	if value := utils.GetEnvString(preferred, ""); value != "" {
		return value
	}
	return utils.GetEnvString(fallback, "")
}
