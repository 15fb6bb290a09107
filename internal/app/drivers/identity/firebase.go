package identity

import (
	"context"
	"errors"
	"mathmaster-otp-service/internal/app/config"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// NewFirebaseAuthClient constructs the process-wide Firebase Auth client from
// the SERVICE_ACCOUNT_KEY credential blob. A missing or malformed blob is a
// startup precondition failure, not a per-request error.
func NewFirebaseAuthClient(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) *auth.Client {
	credentials, err := NormalizeServiceAccountKey(driverConfig.Firebase.ServiceAccountKey)
	if err != nil {
		log.Fatal("Failed to load service account credentials", zap.Error(err))
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentials))
	if err != nil {
		log.Fatal("Failed to initialize Firebase app", zap.Error(err))
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatal("Failed to initialize Firebase auth client", zap.Error(err))
	}

	return client
}

// NormalizeServiceAccountKey parses the raw SERVICE_ACCOUNT_KEY value and
// rewrites literal \n escape sequences inside private_key into real newlines.
// Some configuration transports double-escape the embedded PEM block.
func NormalizeServiceAccountKey(raw string) ([]byte, error) {
	if raw == "" {
		return nil, errors.New("missing SERVICE_ACCOUNT_KEY in environment")
	}

	var account map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, err
	}

	if privateKey, ok := account["private_key"].(string); ok && strings.Contains(privateKey, `\n`) {
		account["private_key"] = strings.ReplaceAll(privateKey, `\n`, "\n")
	}

	return json.Marshal(account)
}
