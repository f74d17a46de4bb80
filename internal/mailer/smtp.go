package mailer

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

// SMTP sends messages through an SMTP submission endpoint with STARTTLS
// and username/password auth.
type SMTP struct {
	client *mail.Client
}

// NewSMTP creates a mailer for the given submission endpoint.
func NewSMTP(host string, port int, username, password string) (*SMTP, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("creating SMTP client for %s:%d: %w", host, port, err)
	}
	return &SMTP{client: client}, nil
}

func (s *SMTP) Send(ctx context.Context, msg *Message) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("setting recipients: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

func (s *SMTP) Close() error {
	return s.client.Close()
}
