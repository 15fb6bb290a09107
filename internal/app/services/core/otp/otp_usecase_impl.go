package otp

import (
	"context"
	"fmt"
	"mathmaster-otp-service/internal/app/config"
	"mathmaster-otp-service/internal/app/services/shared/identity"
	"mathmaster-otp-service/internal/app/services/shared/mailer"
	"mathmaster-otp-service/internal/pkg/constvars"
	"mathmaster-otp-service/internal/pkg/dto/requests"
	"mathmaster-otp-service/internal/pkg/dto/responses"
	"mathmaster-otp-service/internal/pkg/exceptions"
	"mathmaster-otp-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type otpUsecase struct {
	MailerFactory   mailer.Factory
	IdentityService identity.IdentityService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewOTPUsecase(
	mailerFactory mailer.Factory,
	identityService identity.IdentityService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) OTPUsecase {
	return &otpUsecase{
		MailerFactory:   mailerFactory,
		IdentityService: identityService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// SendOTP generates a fresh 6-digit code, mails it to the requested address and
// reports the outcome. The code lives only for the duration of this call; there
// is no server-side store and nothing to verify against later.
func (uc *otpUsecase) SendOTP(ctx context.Context, request *requests.SendOTP) (*responses.SendOTP, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)

	code, err := utils.GenerateOTP()
	if err != nil {
		uc.Log.Error("otpUsecase.SendOTP error generating code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrGenerateOTP(err)
	}

	mailerService, err := uc.MailerFactory.NewMailerService()
	if err != nil {
		uc.Log.Error("otpUsecase.SendOTP error building mail transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("otpUsecase.SendOTP sending verification code",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("recipient", request.Email),
		zap.String("sender", mailerService.Sender()),
	)

	htmlBody := fmt.Sprintf(constvars.EmailOTPBodyFormat, code)
	err = mailerService.SendHTMLEmail(ctx, request.Email, constvars.EmailOTPSubject, htmlBody)
	if err != nil {
		uc.Log.Error("otpUsecase.SendOTP error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.InternalConfig.App.IsProduction() {
		return responses.NewSendOTPProduction(constvars.SendOTPSuccessMessage), nil
	}
	return responses.NewSendOTPDebug(constvars.SendOTPSuccessMessage, code), nil
}

// ResetPassword looks up the provider account by email and overwrites its
// password. Both provider calls complete before the response is produced.
func (uc *otpUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.ResetPassword, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)

	user, err := uc.IdentityService.FindUserByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("otpUsecase.ResetPassword error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("email", request.Email),
			zap.Error(err),
		)
		return nil, exceptions.ErrIdentityUserLookup(err)
	}

	err = uc.IdentityService.UpdateUserPassword(ctx, user.UID, request.NewPassword)
	if err != nil {
		uc.Log.Error("otpUsecase.ResetPassword error updating password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("uid", user.UID),
			zap.Error(err),
		)
		return nil, exceptions.ErrIdentityUpdatePassword(err)
	}

	return &responses.ResetPassword{
		Success: true,
		Message: constvars.ResetPasswordSuccessMessage,
	}, nil
}
