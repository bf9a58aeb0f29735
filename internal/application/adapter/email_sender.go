package adapter

import "context"

// SendEmailInput holds the content of an outgoing email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	// Send delivers a single email.
	Send(ctx context.Context, input SendEmailInput) error
}
