package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts what the control loop did. It is safe for concurrent use
// so a signal handler can read it while the loop runs.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	keyCount   atomic.Uint64
	unboundKey atomic.Uint64
	editCount  atomic.Uint64
	saveCount  atomic.Uint64
	saveFailed atomic.Uint64
	resizes    atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records how long a frame took to draw.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records a key event. bound is false when no command matched.
func (m *Metrics) RecordKey(bound bool) {
	m.keyCount.Add(1)
	if !bound {
		m.unboundKey.Add(1)
	}
}

// RecordEdit records a command that changed the document.
func (m *Metrics) RecordEdit() {
	m.editCount.Add(1)
}

// RecordSave records a save attempt.
func (m *Metrics) RecordSave(err error) {
	if err != nil {
		m.saveFailed.Add(1)
		return
	}
	m.saveCount.Add(1)
}

// RecordResize records a terminal resize.
func (m *Metrics) RecordResize() {
	m.resizes.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frames := m.frameCount.Load()

	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(m.frameTotalNs.Load() / int64(frames))
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		FrameCount:   frames,
		AvgFrameTime: avg,
		MaxFrameTime: time.Duration(m.frameMaxNs.Load()),
		KeyCount:     m.keyCount.Load(),
		UnboundKeys:  m.unboundKey.Load(),
		EditCount:    m.editCount.Load(),
		SaveCount:    m.saveCount.Load(),
		SaveFailures: m.saveFailed.Load(),
		ResizeCount:  m.resizes.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	FrameCount   uint64
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration
	KeyCount     uint64
	UnboundKeys  uint64
	EditCount    uint64
	SaveCount    uint64
	SaveFailures uint64
	ResizeCount  uint64
}

// AvgFPS returns the frame rate the renderer could sustain.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.AvgFrameTime == 0 {
		return 0
	}
	return float64(time.Second) / float64(s.AvgFrameTime)
}
