// Package mailer abstracts outbound HTML email. The production
// implementation speaks SMTP submission (Gmail-style app passwords);
// a Noop implementation exists for tests and dry runs.
package mailer

import "context"

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer sends messages. Send failures are the caller's to log; the mailer
// never retries on its own.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
	Close() error
}

// Noop is a Mailer that drops everything (used when no SMTP credentials
// are configured, e.g. local development).
type Noop struct{}

func (Noop) Send(ctx context.Context, msg *Message) error { return nil }

func (Noop) Close() error { return nil }
