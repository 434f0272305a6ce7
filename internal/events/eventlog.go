// Package events provides the append-only record of everything that happens
// to the snake during a run. It is the simulation's audit trail: the current
// entity state can always be reconstructed by replaying it.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType defines the category of a simulation event.
type EventType string

const (
	EventTypeRunStarted   EventType = "RUN_STARTED"
	EventTypeFeed         EventType = "FEED"
	EventTypeColorAdvance EventType = "COLOR_ADVANCE"
	EventTypeFeedRejected EventType = "FEED_REJECTED"
	EventTypeRunCompleted EventType = "RUN_COMPLETED"
)

// RunStartedPayload holds the feeding schedule for a run. Growth is purely
// additive and the cycle step is fixed, so the end state is known up front
// and recorded alongside the schedule.
type RunStartedPayload struct {
	Apples          int    `json:"apples"`
	LengthGain      int    `json:"length_gain"`
	GirthGain       int    `json:"girth_gain"`
	ProjectedLength int    `json:"projected_length"`
	ProjectedGirth  int    `json:"projected_girth"`
	ProjectedColor  string `json:"projected_color"`
}

// FeedPayload records the gains applied by a single apple.
type FeedPayload struct {
	LengthGain int `json:"length_gain"`
	GirthGain  int `json:"girth_gain"`
	NewLength  int `json:"new_length"`
	NewGirth   int `json:"new_girth"`
}

// ColorAdvancePayload records one step of the color cycle.
type ColorAdvancePayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Wrapped bool   `json:"wrapped"` // true when the cycle returned to its first entry
}

// FeedRejectedPayload records a feed attempt that failed validation.
type FeedRejectedPayload struct {
	LengthGain int    `json:"length_gain"`
	GirthGain  int    `json:"girth_gain"`
	Reason     string `json:"reason"`
}

// RunCompletedPayload holds the end state of a finished run.
type RunCompletedPayload struct {
	Apples      int    `json:"apples"`
	FinalLength int    `json:"final_length"`
	FinalGirth  int    `json:"final_girth"`
	FinalColor  string `json:"final_color"`
}

// SimEvent represents an immutable record of a simulation step.
type SimEvent struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	FeedSeq   int         `json:"feed_seq"` // 1-based apple number, 0 for run-level events
}

// EventPersister defines how an event would be durably stored. The simulation
// ships with no durable implementation; the seam exists for hosts that need one.
type EventPersister interface {
	Append(event SimEvent) error
}

// EventLog is the in-memory append-only log of simulation events.
type EventLog struct {
	mu        sync.RWMutex
	events    []SimEvent
	persister EventPersister
}

// NewEventLog creates a new event log with an optional persister.
func NewEventLog(persister EventPersister) *EventLog {
	return &EventLog{
		events:    make([]SimEvent, 0),
		persister: persister,
	}
}

// Append adds a new event to the log. Events are immutable once appended.
func (el *EventLog) Append(event SimEvent) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.events = append(el.events, event)

	if el.persister != nil {
		// Write through synchronously; the run loop has no suspension points.
		_ = el.persister.Append(event)
	}
}

// Replay returns the full history of events for state reconstruction.
func (el *EventLog) Replay() []SimEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.events
}

// GetByType returns all events of a specific category, in append order.
func (el *EventLog) GetByType(t EventType) []SimEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []SimEvent
	for _, e := range el.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// Len returns the number of appended events.
func (el *EventLog) Len() int {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return len(el.events)
}

// NewEventID creates a unique event identifier.
func NewEventID() string {
	return uuid.NewString()
}
