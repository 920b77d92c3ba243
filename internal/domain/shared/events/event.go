package events

import (
	"time"
)

// DomainEvent is a fact raised by an aggregate and handled asynchronously.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewBaseEvent(aggregateID, eventType string) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

func (e BaseEvent) GetEventType() string {
	return e.EventType
}

func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

// EventHandler processes events of the types it subscribed to.
type EventHandler interface {
	Handle(event DomainEvent) error
}

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc func(DomainEvent) error

func (f HandlerFunc) Handle(event DomainEvent) error {
	return f(event)
}

type EventPublisher interface {
	Publish(event DomainEvent) error
}

type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
}

// EventDispatcher combines publisher and subscriber functionality
type EventDispatcher interface {
	EventPublisher
	EventSubscriber
	Start() error
	Stop() error
}
