package otp

import (
	"context"
	"errors"
	"mathmaster-otp-service/internal/app/config"
	"mathmaster-otp-service/internal/pkg/constvars"
	"mathmaster-otp-service/internal/pkg/dto/requests"
	"mathmaster-otp-service/internal/pkg/exceptions"
	"mathmaster-otp-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type OTPController struct {
	OTPUsecase     OTPUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewOTPController(logger *zap.Logger, internalConfig *config.InternalConfig, otpUsecase OTPUsecase) *OTPController {
	return &OTPController{
		OTPUsecase:     otpUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (ctrl *OTPController) SendOTP(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendOTP)
	err := decodeStrict(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSendOTPCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSendOTPInvalidRequest(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.OTPUsecase.SendOTP(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *OTPController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResetPassword)
	err := decodeStrict(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrResetPasswordCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrResetPasswordInvalidRequest(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.OTPUsecase.ResetPassword(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *OTPController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

// decodeStrict rejects bodies with unknown fields so request shapes stay typed.
func decodeStrict(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
