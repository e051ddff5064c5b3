package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "GATE_DECISION").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
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

// NewGateDecisionEvent is emitted after every arrival decision, including
// holds. Downstream dashboards key off the status field.
func NewGateDecisionEvent(plate, status, analysis string) Event {
	return BaseEvent{
		Type: "GATE_DECISION",
		Data: map[string]interface{}{
			"plate":    plate,
			"status":   status,
			"analysis": analysis,
		},
		OccurredAt: time.Now(),
	}
}
