package constvars

const (
	ResponseUnknown = "unknown"
)

const (
	// Success messages
	SendOTPSuccessMessage       = "Đã gửi OTP"
	ResetPasswordSuccessMessage = "Đã cập nhật mật khẩu thành công"
)

const (
	// Client-facing error messages. The endpoint contract fixes these texts.
	ErrClientMissingEmail               = "Missing email"
	ErrClientMissingEmailOrNewPassword  = "Missing email or newPassword"
	ErrClientSendOTPFailed              = "Không gửi được OTP"
	ErrClientUpdatePasswordFailed       = "Update failed"
	ErrClientSomethingWrongWithApp      = "something went wrong with the application"
	ErrClientServerTookTooLongToRespond = "server took too long to respond"
)
