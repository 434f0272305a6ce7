// Package engine contains the run loop of the growth simulation.
//
// ARCHITECTURAL RULE: the Engine owns sequencing and reporting only. Every
// state transition happens inside the snake entity, and every transition is
// mirrored into the EventLog.
package engine

import (
	"fmt"
	"time"

	"github.com/serpentlab/vivarium/internal/domain/rules"
	"github.com/serpentlab/vivarium/internal/domain/snake"
	"github.com/serpentlab/vivarium/internal/events"
	"github.com/serpentlab/vivarium/internal/platform/logger"
	"github.com/serpentlab/vivarium/internal/platform/metrics"
)

// FeedReport is the per-apple snapshot handed to the observer after each
// successful feed.
type FeedReport struct {
	Seq         int // 1-based apple number
	Length      int
	Girth       int
	Color       snake.Color
	Description string
}

// Observer receives a report after each successful feed. It replaces a
// network fan-out: hosts that want to display progress hook in here.
type Observer func(FeedReport)

// Engine orchestrates a feeding run against a single snake.
type Engine struct {
	snake     *snake.Snake
	eventLog  *events.EventLog
	logger    *logger.Logger
	collector *metrics.Collector
	observer  Observer
}

// NewEngine wires the snake to the event log and counters.
func NewEngine(s *snake.Snake, eventLog *events.EventLog, log *logger.Logger, collector *metrics.Collector) *Engine {
	return &Engine{
		snake:     s,
		eventLog:  eventLog,
		logger:    log,
		collector: collector,
	}
}

// SetObserver registers the per-feed callback. Pass nil to detach.
func (e *Engine) SetObserver(fn Observer) {
	e.observer = fn
}

// Snake returns the entity driven by this engine.
func (e *Engine) Snake() *snake.Snake {
	return e.snake
}

// Run feeds the snake once per apple with fixed gains, recording each step in
// the event log. The first rejected feed stops the run and the entity error
// propagates unmodified; everything fed before it stays applied.
func (e *Engine) Run(apples, lengthGain, girthGain int) ([]FeedReport, error) {
	if apples <= 0 {
		e.logger.Warn("Run requested with no apples; the snake goes hungry.")
	}

	cycle := snake.Cycle()
	projLength, projGirth := rules.ProjectGrowth(e.snake.Length, e.snake.Girth, apples, lengthGain, girthGain)
	projColor := cycle[rules.ColorIndexAfter(e.snake.ColorIndex(), apples, len(cycle))]
	e.logger.Event(string(events.EventTypeRunStarted), "DRIVER",
		fmt.Sprintf("%d apples, +%d length and +%d girth each, projected end state %d/%d/%s",
			apples, lengthGain, girthGain, projLength, projGirth, projColor))

	e.eventLog.Append(events.SimEvent{
		ID:        events.NewEventID(),
		Timestamp: time.Now(),
		Type:      events.EventTypeRunStarted,
		Payload: events.RunStartedPayload{
			Apples:          apples,
			LengthGain:      lengthGain,
			GirthGain:       girthGain,
			ProjectedLength: projLength,
			ProjectedGirth:  projGirth,
			ProjectedColor:  string(projColor),
		},
	})

	reports := make([]FeedReport, 0, max(apples, 0))
	for seq := 1; seq <= apples; seq++ {
		colorBefore := e.snake.Color

		if err := e.snake.Feed(lengthGain, girthGain); err != nil {
			e.collector.RecordRejection()
			e.eventLog.Append(events.SimEvent{
				ID:        events.NewEventID(),
				Timestamp: time.Now(),
				Type:      events.EventTypeFeedRejected,
				Payload: events.FeedRejectedPayload{
					LengthGain: lengthGain,
					GirthGain:  girthGain,
					Reason:     err.Error(),
				},
				FeedSeq: seq,
			})
			e.logger.Error("Feed rejected: " + err.Error())
			return reports, err
		}

		wrapped := e.snake.ColorIndex() == 0
		e.collector.RecordFeed(lengthGain, girthGain)
		if wrapped {
			e.collector.RecordColorWrap()
		}

		e.eventLog.Append(events.SimEvent{
			ID:        events.NewEventID(),
			Timestamp: time.Now(),
			Type:      events.EventTypeFeed,
			Payload: events.FeedPayload{
				LengthGain: lengthGain,
				GirthGain:  girthGain,
				NewLength:  e.snake.Length,
				NewGirth:   e.snake.Girth,
			},
			FeedSeq: seq,
		})
		e.eventLog.Append(events.SimEvent{
			ID:        events.NewEventID(),
			Timestamp: time.Now(),
			Type:      events.EventTypeColorAdvance,
			Payload: events.ColorAdvancePayload{
				From:    string(colorBefore),
				To:      string(e.snake.Color),
				Wrapped: wrapped,
			},
			FeedSeq: seq,
		})

		report := FeedReport{
			Seq:         seq,
			Length:      e.snake.Length,
			Girth:       e.snake.Girth,
			Color:       e.snake.Color,
			Description: e.snake.Description(),
		}
		reports = append(reports, report)
		if e.observer != nil {
			e.observer(report)
		}
	}

	e.eventLog.Append(events.SimEvent{
		ID:        events.NewEventID(),
		Timestamp: time.Now(),
		Type:      events.EventTypeRunCompleted,
		Payload: events.RunCompletedPayload{
			Apples:      apples,
			FinalLength: e.snake.Length,
			FinalGirth:  e.snake.Girth,
			FinalColor:  string(e.snake.Color),
		},
	})
	e.logger.Event(string(events.EventTypeRunCompleted), "DRIVER", e.snake.Description())

	return reports, nil
}
