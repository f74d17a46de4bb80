package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// startTestNATS starts an embedded NATS server and returns its client URL.
func startTestNATS(t *testing.T) string {
	t.Helper()
	opts := &natsserver.Options{Host: "127.0.0.1", Port: -1}
	srv, err := natsserver.NewServer(opts)
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func TestNoopPublisher_Publish(t *testing.T) {
	pub := &NoopPublisher{}
	err := pub.Publish(context.Background(), TopicEmailSent, EmailSent{})
	if err != nil {
		t.Fatalf("NoopPublisher.Publish returned unexpected error: %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("NoopPublisher.Close returned unexpected error: %v", err)
	}
}

func TestPublisher_Implementations(t *testing.T) {
	var _ Publisher = (*NoopPublisher)(nil)
	var _ Publisher = (*NATSPublisher)(nil)
}

func TestNATSPublisher_Publish(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	// Subscribe to capture published messages.
	nc, err := nats.Connect(url)
	if err != nil {
		t.Fatalf("connecting subscriber: %v", err)
	}
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(TopicEmailSent, ch)
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer sub.Unsubscribe() //nolint:errcheck
	nc.Flush()

	ev := EmailSent{
		MessageID: "msg-abc123",
		Kind:      "countdown",
		To:        []string{"someone@example.com"},
		Subject:   "3 Days Until Your Birthday! 🎉",
	}
	if err := pub.Publish(context.Background(), TopicEmailSent, ev); err != nil {
		t.Fatalf("publishing: %v", err)
	}

	select {
	case msg := <-ch:
		var got EmailSent
		if err := json.Unmarshal(msg.Data, &got); err != nil {
			t.Fatalf("unmarshaling: %v", err)
		}
		if got.MessageID != ev.MessageID || got.Kind != ev.Kind || got.Subject != ev.Subject {
			t.Errorf("received %+v, want %+v", got, ev)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

func TestNATSPublisher_ConnectError(t *testing.T) {
	if _, err := NewNATSPublisher("nats://127.0.0.1:1"); err == nil {
		t.Fatal("expected connection error for unreachable server")
	}
}
