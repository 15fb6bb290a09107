package constvars

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
