package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	clockEvents     uint64
	notRecognized   uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordClockEvent counts confirmed attendance log appends.
func (c *Collector) RecordClockEvent() {
	atomic.AddUint64(&c.clockEvents, 1)
}

// RecordNotRecognized counts face/badge lookups that matched nobody.
func (c *Collector) RecordNotRecognized() {
	atomic.AddUint64(&c.notRecognized, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":      total,
		"errorsTotal":        atomic.LoadUint64(&c.errorRequests),
		"rateLimitedTotal":   atomic.LoadUint64(&c.rateLimited),
		"clockEventsTotal":   atomic.LoadUint64(&c.clockEvents),
		"notRecognizedTotal": atomic.LoadUint64(&c.notRecognized),
		"avgDurationMs":      avg,
	}
}
