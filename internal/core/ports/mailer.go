package ports

import "context"

// MailMessage is a plain-text outbound email.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a single message. Implementations may deliver asynchronously;
// a nil return only guarantees the message was accepted for delivery.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
