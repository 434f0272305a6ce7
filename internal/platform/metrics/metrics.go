// Package metrics provides observability counters for simulation runs.
package metrics

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Collector gathers per-run counters.
type Collector struct {
	FeedsApplied  int64
	FeedsRejected int64
	LengthGained  int64
	GirthGained   int64
	ColorWraps    int64 // times the cycle returned to its first entry

	StartTime time.Time
}

// Global collector instance
var collector = &Collector{
	StartTime: time.Now(),
}

// Get returns the global collector.
func Get() *Collector {
	return collector
}

// NewCollector returns a fresh collector, used by tests and embedded hosts.
func NewCollector() *Collector {
	return &Collector{StartTime: time.Now()}
}

// RecordFeed records one applied apple and its gains.
func (c *Collector) RecordFeed(lengthGain, girthGain int) {
	atomic.AddInt64(&c.FeedsApplied, 1)
	atomic.AddInt64(&c.LengthGained, int64(lengthGain))
	atomic.AddInt64(&c.GirthGained, int64(girthGain))
}

// RecordRejection records a feed attempt that failed validation.
func (c *Collector) RecordRejection() {
	atomic.AddInt64(&c.FeedsRejected, 1)
}

// RecordColorWrap records a full trip around the color cycle.
func (c *Collector) RecordColorWrap() {
	atomic.AddInt64(&c.ColorWraps, 1)
}

// Snapshot returns current counters as a map.
func (c *Collector) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"uptime_seconds": time.Since(c.StartTime).Seconds(),
		"feeds": map[string]interface{}{
			"applied":  atomic.LoadInt64(&c.FeedsApplied),
			"rejected": atomic.LoadInt64(&c.FeedsRejected),
		},
		"growth": map[string]interface{}{
			"length_gained": atomic.LoadInt64(&c.LengthGained),
			"girth_gained":  atomic.LoadInt64(&c.GirthGained),
		},
		"color_wraps": atomic.LoadInt64(&c.ColorWraps),
	}
}

// Summary renders the counters as a short text block for the CLI.
func (c *Collector) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Feeds applied:  %d\n", atomic.LoadInt64(&c.FeedsApplied))
	fmt.Fprintf(&b, "Feeds rejected: %d\n", atomic.LoadInt64(&c.FeedsRejected))
	fmt.Fprintf(&b, "Length gained:  %d\n", atomic.LoadInt64(&c.LengthGained))
	fmt.Fprintf(&b, "Girth gained:   %d\n", atomic.LoadInt64(&c.GirthGained))
	fmt.Fprintf(&b, "Color wraps:    %d\n", atomic.LoadInt64(&c.ColorWraps))
	return b.String()
}
