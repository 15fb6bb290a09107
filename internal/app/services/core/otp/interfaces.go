package otp

import (
	"context"
	"mathmaster-otp-service/internal/pkg/dto/requests"
	"mathmaster-otp-service/internal/pkg/dto/responses"
)

type OTPUsecase interface {
	SendOTP(ctx context.Context, request *requests.SendOTP) (*responses.SendOTP, error)
	ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.ResetPassword, error)
}
