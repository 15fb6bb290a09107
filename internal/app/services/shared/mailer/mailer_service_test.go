package mailer

import (
	"context"
	"mathmaster-otp-service/internal/app/config"
	"mathmaster-otp-service/internal/pkg/exceptions"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSMTPMailerFactory_NewMailerService(t *testing.T) {
	t.Run("builds a transport when credentials are present", func(t *testing.T) {
		factory := NewSMTPMailerFactory(&config.DriverConfig{
			SMTP: config.SMTP{
				Host:     "smtp.gmail.com",
				Port:     587,
				Username: "mathmaster@gmail.com",
				Password: "app-password",
			},
		})

		svc, err := factory.NewMailerService()
		assert.NoError(t, err)
		assert.Equal(t, "mathmaster@gmail.com", svc.Sender())
	})

	t.Run("fails with a configuration error when no credentials resolve", func(t *testing.T) {
		factory := NewSMTPMailerFactory(&config.DriverConfig{
			SMTP: config.SMTP{Host: "smtp.gmail.com", Port: 587},
		})

		svc, err := factory.NewMailerService()
		assert.Nil(t, svc)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 500, customErr.StatusCode)
	})
}

func TestMailerService_SendHTMLEmail_DeadlineExceeded(t *testing.T) {
	// A server that accepts the connection but never sends an SMTP greeting,
	// so the send blocks until the context deadline fires.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, acceptErr := listener.Accept()
		if acceptErr != nil {
			return
		}
		defer conn.Close()
		time.Sleep(2 * time.Second)
	}()

	factory := NewSMTPMailerFactory(&config.DriverConfig{
		SMTP: config.SMTP{
			Host:     "127.0.0.1",
			Port:     listener.Addr().(*net.TCPAddr).Port,
			Username: "mathmaster@gmail.com",
			Password: "app-password",
		},
	})
	svc, err := factory.NewMailerService()
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = svc.SendHTMLEmail(ctx, "user@example.com", "subject", "<p>body</p>")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
