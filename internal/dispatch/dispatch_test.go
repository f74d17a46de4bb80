package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/alfredjeanlab/bdayd/internal/catalog"
	"github.com/alfredjeanlab/bdayd/internal/events"
	"github.com/alfredjeanlab/bdayd/internal/mailer"
)

type mockMailer struct {
	sent []*mailer.Message

	// failFirst makes the first Send call fail, subsequent calls succeed.
	failFirst bool
	// failAll makes every Send call fail.
	failAll bool
	calls   int
}

func (m *mockMailer) Send(_ context.Context, msg *mailer.Message) error {
	m.calls++
	if m.failAll || (m.failFirst && m.calls == 1) {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mockMailer) Close() error { return nil }

type capturePublisher struct {
	topics []string
	events []any
}

func (p *capturePublisher) Publish(_ context.Context, topic string, event any) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func testDispatcher(m mailer.Mailer, p events.Publisher) *Dispatcher {
	return New(m, p, catalog.Default(), Config{
		From:       "sender@example.com",
		Recipients: []string{"r1@example.com", "r2@example.com"},
		Operator:   "ops@example.com",
		Name:       "Rudrry",
	}, slog.New(slog.DiscardHandler))
}

func TestSendCountdown(t *testing.T) {
	mm := &mockMailer{}
	pub := &capturePublisher{}
	d := testDispatcher(mm, pub)

	if err := d.SendCountdown(context.Background(), 3); err != nil {
		t.Fatalf("SendCountdown: %v", err)
	}

	if len(mm.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(mm.sent))
	}
	msg := mm.sent[0]
	if msg.Subject != "3 Days Until Your Birthday! 🎉" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if len(msg.To) != 2 {
		t.Errorf("recipients = %v, want both configured addresses", msg.To)
	}
	if !strings.Contains(msg.HTML, "Just 3 days") {
		t.Errorf("body missing countdown text: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "Kapuuu") {
		t.Errorf("body missing quote author: %q", msg.HTML)
	}

	if len(pub.topics) != 1 || pub.topics[0] != events.TopicEmailSent {
		t.Errorf("published topics = %v, want one email.sent", pub.topics)
	}
	sent, ok := pub.events[0].(events.EmailSent)
	if !ok {
		t.Fatalf("event type = %T", pub.events[0])
	}
	if sent.Kind != "countdown" || !strings.HasPrefix(sent.MessageID, "msg-") {
		t.Errorf("event = %+v", sent)
	}
}

func TestSendBirthday(t *testing.T) {
	mm := &mockMailer{}
	d := testDispatcher(mm, &capturePublisher{})

	if err := d.SendBirthday(context.Background()); err != nil {
		t.Fatalf("SendBirthday: %v", err)
	}
	msg := mm.sent[0]
	if !strings.Contains(msg.Subject, "Happy Birthday Rudrry") {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "Happy Birthday, Rudrry") {
		t.Errorf("body missing greeting: %q", msg.HTML)
	}
}

func TestSend_FailurePublishesFailedEvent(t *testing.T) {
	mm := &mockMailer{failAll: true}
	pub := &capturePublisher{}
	d := testDispatcher(mm, pub)

	err := d.SendCountdown(context.Background(), 7)
	if err == nil {
		t.Fatal("expected send error")
	}
	if len(pub.topics) != 1 || pub.topics[0] != events.TopicEmailFailed {
		t.Fatalf("published topics = %v, want one email.failed", pub.topics)
	}
	failed := pub.events[0].(events.EmailFailed)
	if failed.Kind != "countdown" || failed.Error == "" {
		t.Errorf("event = %+v", failed)
	}
}

func TestEscalate_NotifiesOperatorOnce(t *testing.T) {
	mm := &mockMailer{}
	d := testDispatcher(mm, &capturePublisher{})

	d.Escalate(context.Background(), "unable to send daily mail", errors.New("smtp down"))

	if len(mm.sent) != 1 {
		t.Fatalf("sent %d messages, want one operator notification", len(mm.sent))
	}
	msg := mm.sent[0]
	if msg.To[0] != "ops@example.com" {
		t.Errorf("notification went to %v, want operator", msg.To)
	}
	if !strings.Contains(msg.HTML, "unable to send daily mail") {
		t.Errorf("body missing message: %q", msg.HTML)
	}
}

func TestEscalate_SwallowsNotificationFailure(t *testing.T) {
	// Every send fails, including the operator notification; Escalate must
	// not panic or return anything.
	mm := &mockMailer{failAll: true}
	d := testDispatcher(mm, &capturePublisher{})

	d.Escalate(context.Background(), "unable to send bday mail", errors.New("smtp down"))

	if mm.calls != 1 {
		t.Fatalf("mailer called %d times, want exactly one escalation attempt", mm.calls)
	}
}
