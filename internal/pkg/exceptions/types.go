package exceptions

import (
	"fmt"
	"mathmaster-otp-service/internal/pkg/constvars"
)

var (
	// Request parsing / validation
	ErrSendOTPCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingEmail, constvars.ErrDevCannotParseJSON)
	}
	ErrSendOTPInvalidRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingEmail, constvars.ErrDevValidationFailed)
	}
	ErrResetPasswordCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingEmailOrNewPassword, constvars.ErrDevCannotParseJSON)
	}
	ErrResetPasswordInvalidRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingEmailOrNewPassword, constvars.ErrDevValidationFailed)
	}

	// OTP
	ErrGenerateOTP = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSendOTPFailed, constvars.ErrDevGenerateOTP)
	}

	// Mailer
	ErrMailerCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSendOTPFailed, constvars.ErrDevMailerCredentialsMissing)
	}
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSendOTPFailed, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}

	// Identity provider. The provider's own error text is surfaced to the client
	// on reset-password, falling back to a generic message when there is none.
	ErrIdentityUserLookup = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, providerMessage(err), constvars.ErrDevIdentityUserLookup)
	}
	ErrIdentityUpdatePassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, providerMessage(err), constvars.ErrDevIdentityUpdatePassword)
	}

	// HTTP
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerTookTooLongToRespond, constvars.ErrDevServerDeadlineExceeded)
	}
)

func providerMessage(err error) string {
	if err == nil || err.Error() == "" {
		return constvars.ErrClientUpdatePasswordFailed
	}
	return err.Error()
}
