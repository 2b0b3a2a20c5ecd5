package events

import (
	"github.com/vsinha/breadsim/pkg/domain/entities"
)

// Event is one fact recorded during a simulation run. Version is the
// position of the event within its stream, starting at 1.
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Day() entities.Day
	Version() int
}

// EventHandler receives events the store was subscribed for
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore is an append-only log keyed by stream. The simulation uses the
// run ID as the stream.
type EventStore interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
	Unsubscribe(handler EventHandler) error
}

// BaseEvent is the concrete value every event constructor returns
type BaseEvent struct {
	EventType    string
	Stream       string
	EventData    interface{}
	EventDay     entities.Day
	EventVersion int
}

func (e BaseEvent) Type() string {
	return e.EventType
}

func (e BaseEvent) StreamID() string {
	return e.Stream
}

func (e BaseEvent) Data() interface{} {
	return e.EventData
}

func (e BaseEvent) Day() entities.Day {
	return e.EventDay
}

func (e BaseEvent) Version() int {
	return e.EventVersion
}

// NewEvent stamps an event with the simulated day it happened on.
// Events carry no wall-clock time.
func NewEvent(eventType, streamID string, day entities.Day, data interface{}) Event {
	return BaseEvent{
		EventType:    eventType,
		Stream:       streamID,
		EventData:    data,
		EventDay:     day,
		EventVersion: 1,
	}
}
