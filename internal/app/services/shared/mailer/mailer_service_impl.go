package mailer

import (
	"context"
	"fmt"
	"mathmaster-otp-service/internal/app/config"
	"mathmaster-otp-service/internal/app/drivers/mailer"
	"mathmaster-otp-service/internal/pkg/constvars"
	"mathmaster-otp-service/internal/pkg/exceptions"
	"net/smtp"
)

type smtpMailerFactory struct {
	DriverConfig *config.DriverConfig
}

func NewSMTPMailerFactory(driverConfig *config.DriverConfig) Factory {
	return &smtpMailerFactory{
		DriverConfig: driverConfig,
	}
}

func (f *smtpMailerFactory) NewMailerService() (MailerService, error) {
	client, err := mailer.NewSMTPClient(f.DriverConfig)
	if err != nil {
		return nil, exceptions.ErrMailerCredentials(err)
	}
	return &mailerService{Client: client}, nil
}

type mailerService struct {
	Client *mailer.SMTPClient
}

// SendHTMLEmail runs the SMTP exchange in its own goroutine because net/smtp
// has no context support. When the context expires first the request fails
// with the context error and the abandoned goroutine drains on its own.
func (svc *mailerService) SendHTMLEmail(ctx context.Context, to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLFormat, svc.Client.FromName, to, subject, htmlBody))

	errCh := make(chan error, 1)
	go func() {
		errCh <- smtp.SendMail(svc.Client.Addr(), svc.Client.Auth, svc.Client.Username, []string{to}, msg)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		if err != nil {
			return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
		}
		return nil
	}
}

func (svc *mailerService) Sender() string {
	return svc.Client.Username
}
