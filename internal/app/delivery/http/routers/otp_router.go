package routers

import (
	"mathmaster-otp-service/internal/app/services/core/otp"

	"github.com/go-chi/chi/v5"
)

// Neither endpoint is authenticated; any caller that can reach the service can
// request an OTP for, or reset the password of, any address. See DESIGN.md.
func attachOTPRoutes(router chi.Router, otpController *otp.OTPController) {
	router.Post("/send-otp", otpController.SendOTP)
	router.Post("/reset-password", otpController.ResetPassword)
}
