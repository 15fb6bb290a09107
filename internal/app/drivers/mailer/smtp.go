package mailer

import (
	"errors"
	"fmt"
	"mathmaster-otp-service/internal/app/config"
	"mathmaster-otp-service/internal/pkg/constvars"
	"net/smtp"
)

var ErrMissingCredentials = errors.New("missing EMAIL_USER2/EMAIL_PASS2 (or fallback EMAIL_USER/EMAIL_PASS)")

type SMTPClient struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	Auth     smtp.Auth
}

// NewSMTPClient builds a client bound to the Gmail submission service. It is
// invoked per send request; the caller turns ErrMissingCredentials into a
// 500-class response instead of crashing the process.
func NewSMTPClient(driverConfig *config.DriverConfig) (*SMTPClient, error) {
	username := driverConfig.SMTP.Username
	password := driverConfig.SMTP.Password
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	return &SMTPClient{
		Host:     driverConfig.SMTP.Host,
		Port:     driverConfig.SMTP.Port,
		Username: username,
		Password: password,
		FromName: fmt.Sprintf(constvars.EmailFromNameFormat, username),
		Auth:     smtp.PlainAuth("", username, password, driverConfig.SMTP.Host),
	}, nil
}

func (c *SMTPClient) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
