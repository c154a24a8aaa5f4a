package events

import (
	"context"
	"strings"
	"time"
)

const (
	SubjectPrefix = "events."

	TypeServiceRequestCreated       = "SERVICE_REQUEST_CREATED"
	TypeServiceRequestStatusChanged = "SERVICE_REQUEST_STATUS_CHANGED"
	TypeVisaApplicationCreated      = "VISA_APPLICATION_CREATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SERVICE_REQUEST_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher puts events on the bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. It stands in when the bus is unreachable.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Subject is the bus subject an event type is published on.
func Subject(eventType string) string {
	return SubjectPrefix + eventType
}

// TypeFromSubject is the inverse of Subject.
func TypeFromSubject(subject string) string {
	return strings.TrimPrefix(subject, SubjectPrefix)
}

// String reads a string field from a payload, empty when missing.
func String(payload map[string]interface{}, key string) string {
	v, _ := payload[key].(string)
	return v
}
