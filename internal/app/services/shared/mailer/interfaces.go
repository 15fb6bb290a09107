package mailer

import "context"

// MailerService delivers a single message through the configured transport.
// The context bounds the whole delivery; an expired deadline aborts the send.
type MailerService interface {
	SendHTMLEmail(ctx context.Context, to, subject, htmlBody string) error
	Sender() string
}

// Factory builds a transport bound to the resolved mail account. The reference
// behavior constructs a fresh transport per send request, so handlers call this
// on every request and map a failure to a 500-class response.
type Factory interface {
	NewMailerService() (MailerService, error)
}
