package constvars

const (
	// AppName is the service identifier reported by the health endpoint.
	AppName = "otp-server-mathmaster"

	// AppEnvProduction is the NODE_ENV value that suppresses the debug otp field.
	AppEnvProduction = "production"
)

type contextKey string

// ContextRequestIDKey carries the per-request id set by the request-id middleware.
const ContextRequestIDKey contextKey = "request_id"

const LoggingRequestIDKey = "request_id"
