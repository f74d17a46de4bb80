// Package dispatch composes and sends the app's three email kinds:
// the daily countdown, the birthday email, and operator notifications.
//
// Failure handling is deliberately bounded: a failed send is logged and
// escalated once to the operator address; a failed escalation is only
// logged. Nothing is retried and nothing crashes the caller.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alfredjeanlab/bdayd/internal/catalog"
	"github.com/alfredjeanlab/bdayd/internal/events"
	"github.com/alfredjeanlab/bdayd/internal/idgen"
	"github.com/alfredjeanlab/bdayd/internal/mailer"
)

// Config is the fixed addressing for all outbound mail.
type Config struct {
	From       string
	Recipients []string // countdown/birthday recipients
	Operator   string   // server-notification recipient
	Name       string   // the celebrant, used in subjects and bodies
}

// Dispatcher sends emails built from the catalog and publishes dispatch
// lifecycle events. All sends are best-effort.
type Dispatcher struct {
	mailer    mailer.Mailer
	publisher events.Publisher
	catalog   *catalog.Catalog
	logger    *slog.Logger
	cfg       Config
}

// New returns a dispatcher over the given mailer and catalog.
func New(m mailer.Mailer, p events.Publisher, c *catalog.Catalog, cfg Config, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{mailer: m, publisher: p, catalog: c, logger: logger, cfg: cfg}
}

// SendCountdown sends the daily countdown email with a random quote.
func (d *Dispatcher) SendCountdown(ctx context.Context, daysLeft int) error {
	quote := d.catalog.RandomQuote()
	body, err := countdownBody(d.cfg.Name, daysLeft, quote)
	if err != nil {
		return err
	}
	return d.send(ctx, "countdown", &mailer.Message{
		From:    d.cfg.From,
		To:      d.cfg.Recipients,
		Subject: fmt.Sprintf("%d Days Until Your Birthday! 🎉", daysLeft),
		HTML:    body,
	})
}

// SendBirthday sends the birthday email.
func (d *Dispatcher) SendBirthday(ctx context.Context) error {
	body, err := birthdayBody(d.cfg.Name)
	if err != nil {
		return err
	}
	return d.send(ctx, "birthday", &mailer.Message{
		From:    d.cfg.From,
		To:      d.cfg.Recipients,
		Subject: fmt.Sprintf("🎉 Happy Birthday %s! 🎂", d.cfg.Name),
		HTML:    body,
	})
}

// NotifyOperator sends a server notification to the operator address.
// Failures are logged and swallowed; there is no further escalation.
func (d *Dispatcher) NotifyOperator(ctx context.Context, message string) {
	body, err := notificationBody(message)
	if err != nil {
		d.logger.Error("failed to render operator notification", "err", err)
		return
	}
	err = d.send(ctx, "notification", &mailer.Message{
		From:    d.cfg.From,
		To:      []string{d.cfg.Operator},
		Subject: "Server Notification: Birthday Email Preparation",
		HTML:    body,
	})
	if err != nil {
		d.logger.Error("failed to send operator notification", "err", err)
	}
}

// Escalate logs a dispatch failure and notifies the operator once.
func (d *Dispatcher) Escalate(ctx context.Context, message string, cause error) {
	d.logger.Error("email dispatch failed", "message", message, "err", cause)
	d.NotifyOperator(ctx, message)
}

// send delivers one message and publishes its lifecycle event. Event
// publishing is best-effort and never fails the send.
func (d *Dispatcher) send(ctx context.Context, kind string, msg *mailer.Message) error {
	id, err := idgen.Message()
	if err != nil {
		return err
	}

	if err := d.mailer.Send(ctx, msg); err != nil {
		d.publish(ctx, events.TopicEmailFailed, events.EmailFailed{
			MessageID: id,
			Kind:      kind,
			Error:     err.Error(),
		})
		return fmt.Errorf("sending %s email: %w", kind, err)
	}

	d.logger.Info("email sent", "message_id", id, "kind", kind, "to", msg.To, "subject", msg.Subject)
	d.publish(ctx, events.TopicEmailSent, events.EmailSent{
		MessageID: id,
		Kind:      kind,
		To:        msg.To,
		Subject:   msg.Subject,
	})
	return nil
}

func (d *Dispatcher) publish(ctx context.Context, topic string, event any) {
	if err := d.publisher.Publish(ctx, topic, event); err != nil {
		d.logger.Warn("failed to publish event", "topic", topic, "err", err)
	}
}
