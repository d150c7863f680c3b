package event

import "time"

// EventType identifies the kind of lifecycle event.
type EventType string

const (
	// Document lifecycle
	DocumentIngested     EventType = "document.ingested"
	DocumentIngestFailed EventType = "document.ingest.failed"

	// Context lifecycle
	ContextRetrieved EventType = "context.retrieved"
	ContextAssembled EventType = "context.assembled"
)

// Event carries data about a lifecycle occurrence.
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// NewEvent creates an event with the current timestamp.
func NewEvent(t EventType, data map[string]interface{}) Event {
	return Event{
		Type:      t,
		Timestamp: time.Now(),
		Data:      data,
	}
}
