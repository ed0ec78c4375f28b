package domain

import "context"

// ModelClient is the boundary to the hosted generative language model.
// Implementations must not retry; a single failure aborts the turn.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// MailMessage is one outbound notification email.
type MailMessage struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer sends notification email over an authenticated transport.
// Each message may fail independently.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
