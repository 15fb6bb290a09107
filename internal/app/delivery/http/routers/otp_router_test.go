package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mathmaster-otp-service/internal/app/config"
	"mathmaster-otp-service/internal/app/delivery/http/middlewares"
	"mathmaster-otp-service/internal/app/services/core/health"
	"mathmaster-otp-service/internal/app/services/core/otp"
	"mathmaster-otp-service/internal/pkg/dto/requests"
	"mathmaster-otp-service/internal/pkg/dto/responses"
	"mathmaster-otp-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockOTPUsecase struct {
	mock.Mock
}

func (m *MockOTPUsecase) SendOTP(ctx context.Context, request *requests.SendOTP) (*responses.SendOTP, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SendOTP), args.Error(1)
}

func (m *MockOTPUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.ResetPassword, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ResetPassword), args.Error(1)
}

func newTestRouter(t *testing.T, usecase otp.OTPUsecase) *chi.Mux {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests:             1000,
			RequestTimeoutInSeconds: 5,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		health.NewHealthController(),
		otp.NewOTPController(logger, internalConfig, usecase),
	)
	return router
}

func doJSONRequest(router *chi.Mux, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, new(MockOTPUsecase))

	var previousNow float64
	for i := 0; i < 3; i++ {
		rr := doJSONRequest(router, "GET", "/health", nil)
		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "otp-server-mathmaster", body["app"])

		now, ok := body["now"].(float64)
		assert.True(t, ok, "now must be numeric")
		assert.GreaterOrEqual(t, now, previousNow, "now must be monotonically non-decreasing")
		previousNow = now
	}
}

func TestSendOTPEndpoint(t *testing.T) {
	t.Run("missing email returns 400", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/send-otp", []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Missing email", body["message"])
		mockUsecase.AssertNotCalled(t, "SendOTP")
	})

	t.Run("absent body returns 400", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/send-otp", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "SendOTP")
	})

	t.Run("successful send echoes the code outside production", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		mockUsecase.On("SendOTP", mock.Anything, &requests.SendOTP{Email: "user@example.com"}).
			Return(responses.NewSendOTPDebug("Đã gửi OTP", "654321"), nil)

		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/send-otp", []byte(`{"email":"user@example.com"}`))
		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Đã gửi OTP", body["message"])
		assert.Regexp(t, `^[0-9]{6}$`, body["otp"])
		mockUsecase.AssertExpectations(t)
	})

	t.Run("production response carries no otp field", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		mockUsecase.On("SendOTP", mock.Anything, mock.Anything).
			Return(responses.NewSendOTPProduction("Đã gửi OTP"), nil)

		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/send-otp", []byte(`{"email":"user@example.com"}`))
		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.NotContains(t, body, "otp")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/send-otp", []byte(`{"email":`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Missing email", body["message"])
		mockUsecase.AssertNotCalled(t, "SendOTP")
	})

	t.Run("expired deadline returns 504", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		mockUsecase.On("SendOTP", mock.Anything, mock.Anything).
			Return(nil, context.DeadlineExceeded)

		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/send-otp", []byte(`{"email":"user@example.com"}`))
		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "server took too long to respond", body["message"])
	})

	t.Run("transport failure returns a generic 500 without the code", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		mockUsecase.On("SendOTP", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrMailerCredentials(errors.New("missing EMAIL_USER2/EMAIL_PASS2")))

		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/send-otp", []byte(`{"email":"user@example.com"}`))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Không gửi được OTP", body["message"])
		assert.NotContains(t, body, "otp")
		assert.NotContains(t, rr.Body.String(), "EMAIL_USER2")
	})
}

func TestResetPasswordEndpoint(t *testing.T) {
	t.Run("missing newPassword returns 400", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/reset-password", []byte(`{"email":"a@b.com"}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Missing email or newPassword", body["message"])
		mockUsecase.AssertNotCalled(t, "ResetPassword")
	})

	t.Run("valid request updates the password", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		mockUsecase.On("ResetPassword", mock.Anything, &requests.ResetPassword{
			Email:       "a@b.com",
			NewPassword: "s3cret!A",
		}).Return(&responses.ResetPassword{
			Success: true,
			Message: "Đã cập nhật mật khẩu thành công",
		}, nil)

		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/reset-password", []byte(`{"email":"a@b.com","newPassword":"s3cret!A"}`))
		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		mockUsecase.AssertExpectations(t)
	})

	t.Run("deadline wrapped by a provider error returns 504", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		mockUsecase.On("ResetPassword", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrIdentityUserLookup(context.DeadlineExceeded))

		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/reset-password", []byte(`{"email":"a@b.com","newPassword":"s3cret!A"}`))
		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "server took too long to respond", body["message"])
	})

	t.Run("provider failure surfaces the provider message with 500", func(t *testing.T) {
		mockUsecase := new(MockOTPUsecase)
		mockUsecase.On("ResetPassword", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrIdentityUserLookup(errors.New("no user record found for the given email")))

		router := newTestRouter(t, mockUsecase)

		rr := doJSONRequest(router, "POST", "/reset-password", []byte(`{"email":"ghost@b.com","newPassword":"s3cret!A"}`))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "no user record found for the given email", body["message"])
	})
}
