package responses

// SendOTP is the /send-otp success body. OTP is a non-production debugging aid
// and must stay empty when the service runs in production mode.
type SendOTP struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

// NewSendOTPDebug echoes the generated code back to the caller.
func NewSendOTPDebug(message, otp string) *SendOTP {
	return &SendOTP{
		Success: true,
		Message: message,
		OTP:     otp,
	}
}

// NewSendOTPProduction never carries the code.
func NewSendOTPProduction(message string) *SendOTP {
	return &SendOTP{
		Success: true,
		Message: message,
	}
}

type ResetPassword struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Error struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
