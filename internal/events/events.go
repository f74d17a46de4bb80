// Package events defines the dispatch lifecycle events the server emits
// and the Publisher interface used to send them to NATS (or nowhere).
package events

import (
	"context"
	"time"
)

// Event topic constants
const (
	TopicEmailSent    = "bday.email.sent"
	TopicEmailFailed  = "bday.email.failed"
	TopicTriggerFired = "bday.trigger.fired"
	TopicKeepAlive    = "bday.keepalive"
)

// Event types

type EmailSent struct {
	MessageID string   `json:"message_id"`
	Kind      string   `json:"kind"` // "countdown", "birthday", "notification"
	To        []string `json:"to"`
	Subject   string   `json:"subject"`
}

type EmailFailed struct {
	MessageID string `json:"message_id"`
	Kind      string `json:"kind"`
	Error     string `json:"error"`
}

type TriggerFired struct {
	Trigger string    `json:"trigger"`
	At      time.Time `json:"at"`
}

type KeepAlive struct {
	At time.Time `json:"at"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
