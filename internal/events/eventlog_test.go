package events

import (
	"testing"
	"time"
)

func TestAppendAndReplay(t *testing.T) {
	el := NewEventLog(nil)

	el.Append(SimEvent{ID: NewEventID(), Timestamp: time.Now(), Type: EventTypeRunStarted})
	el.Append(SimEvent{ID: NewEventID(), Timestamp: time.Now(), Type: EventTypeFeed, FeedSeq: 1})

	history := el.Replay()
	if len(history) != 2 {
		t.Fatalf("expected 2 events, got %d", len(history))
	}
	if history[0].Type != EventTypeRunStarted || history[1].Type != EventTypeFeed {
		t.Errorf("replay out of append order: %s, %s", history[0].Type, history[1].Type)
	}
	if el.Len() != 2 {
		t.Errorf("expected Len 2, got %d", el.Len())
	}
}

func TestGetByType(t *testing.T) {
	el := NewEventLog(nil)
	el.Append(SimEvent{ID: NewEventID(), Type: EventTypeFeed, FeedSeq: 1})
	el.Append(SimEvent{ID: NewEventID(), Type: EventTypeColorAdvance, FeedSeq: 1})
	el.Append(SimEvent{ID: NewEventID(), Type: EventTypeFeed, FeedSeq: 2})

	feeds := el.GetByType(EventTypeFeed)
	if len(feeds) != 2 {
		t.Fatalf("expected 2 FEED events, got %d", len(feeds))
	}
	if feeds[0].FeedSeq != 1 || feeds[1].FeedSeq != 2 {
		t.Errorf("FEED events out of order: seq %d, %d", feeds[0].FeedSeq, feeds[1].FeedSeq)
	}
}

// capturePersister records every event written through to it.
type capturePersister struct {
	events []SimEvent
}

func (p *capturePersister) Append(event SimEvent) error {
	p.events = append(p.events, event)
	return nil
}

func TestPersisterWriteThrough(t *testing.T) {
	persister := &capturePersister{}
	el := NewEventLog(persister)

	el.Append(SimEvent{ID: NewEventID(), Type: EventTypeFeed, FeedSeq: 1})

	if len(persister.events) != 1 {
		t.Fatalf("expected 1 persisted event, got %d", len(persister.events))
	}
	if persister.events[0].Type != EventTypeFeed {
		t.Errorf("expected FEED, got %s", persister.events[0].Type)
	}
}

func TestNewEventIDIsUnique(t *testing.T) {
	a, b := NewEventID(), NewEventID()
	if a == "" || b == "" {
		t.Fatal("empty event ID")
	}
	if a == b {
		t.Errorf("event IDs collided: %s", a)
	}
}
