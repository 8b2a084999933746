package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks per-session counters and render timing.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Input handling
	keyCount    atomic.Uint64
	resizeCount atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordFrame records the time taken to draw and flush one frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records a handled key event.
func (m *Metrics) RecordKey() {
	m.keyCount.Add(1)
}

// RecordResize records a resize event.
func (m *Metrics) RecordResize() {
	m.resizeCount.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()
	total := m.frameTotalNs.Load()

	var avg int64
	if frameCount > 0 {
		avg = total / int64(frameCount)
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		FrameCount:   frameCount,
		TotalFrame:   time.Duration(total),
		AvgFrame:     time.Duration(avg),
		MaxFrame:     time.Duration(m.frameMaxNs.Load()),
		LastFrame:    time.Duration(m.lastFrameNs.Load()),
		KeyEvents:    m.keyCount.Load(),
		ResizeEvents: m.resizeCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	FrameCount   uint64
	TotalFrame   time.Duration
	AvgFrame     time.Duration
	MaxFrame     time.Duration
	LastFrame    time.Duration
	KeyEvents    uint64
	ResizeEvents uint64
}

// Fields returns the snapshot as log fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"uptime":   s.Uptime.Round(time.Millisecond),
		"frames":   s.FrameCount,
		"avgFrame": s.AvgFrame,
		"maxFrame": s.MaxFrame,
		"keys":     s.KeyEvents,
		"resizes":  s.ResizeEvents,
	}
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer starts a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
