package service

import "context"

// Mail is a plain-text message to one or more recipients.
type Mail struct {
	Subject    string
	Body       string
	Recipients []string
}

// Mailer defines the interface for sending transactional email.
type Mailer interface {
	// Send delivers the message. Partial delivery is reported as an error.
	Send(ctx context.Context, mail *Mail) error
}
