package constvars

// Developer-facing error messages. Logged server-side, never sent to clients.
const (
	ErrDevCannotParseJSON          = "failed to parse request body JSON"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevMailerCredentialsMissing = "no usable EMAIL_USER2/EMAIL_PASS2 or EMAIL_USER/EMAIL_PASS pair"
	ErrDevSMTPSendEmail            = "failed to send email through SMTP host: %s"
	ErrDevGenerateOTP              = "failed to generate OTP code"
	ErrDevIdentityUserLookup       = "failed to look up identity provider account by email"
	ErrDevIdentityUpdatePassword   = "failed to update identity provider account password"
	ErrDevServerDeadlineExceeded   = "request deadline exceeded"
)
