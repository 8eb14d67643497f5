package events

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidEnvelope = errors.New("invalid event envelope")

// EventEnvelope wraps what the storefront puts on the events exchange. The
// field names match the contract the order and inventory services consume.
// PartitionKey is the visitor's session id and Sequence counts per session.
type EventEnvelope[T any] struct {
	EventName     string    `json:"eventName"`
	EventVersion  int       `json:"eventVersion"`
	EventID       string    `json:"eventId"`
	CorrelationID string    `json:"correlationId,omitempty"`
	CausationID   string    `json:"causationId,omitempty"`
	Producer      string    `json:"producer"`
	PartitionKey  string    `json:"partitionKey"`
	Sequence      *int64    `json:"sequence,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
	Schema        string    `json:"schema"`
	Payload       T         `json:"payload"`
}

// EventMeta is taken from the request that caused the event.
type EventMeta struct {
	CorrelationID string
	CausationID   string
	PartitionKey  string
}

// Validate checks the identity fields a consumer routes on. Every problem
// wraps ErrInvalidEnvelope.
func (e EventEnvelope[T]) Validate(name string, version int) error {
	switch {
	case e.EventName != name:
		return fmt.Errorf("%w: event %q, want %q", ErrInvalidEnvelope, e.EventName, name)
	case e.EventVersion != version:
		return fmt.Errorf("%w: %s version %d, want %d", ErrInvalidEnvelope, name, e.EventVersion, version)
	case e.EventID == "":
		return fmt.Errorf("%w: %s without eventId", ErrInvalidEnvelope, name)
	case e.PartitionKey == "":
		return fmt.Errorf("%w: %s without session partition key", ErrInvalidEnvelope, name)
	}
	return nil
}
