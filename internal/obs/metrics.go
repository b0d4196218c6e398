package obs

import (
	"sync/atomic"

	"github.com/arsvincere/avin-sub002/internal/bus"
)

const (
	maxEventKind  = int(bus.EventOrderBook)
	maxActionKind = int(bus.ActionGetBars)
)

// Metrics collects lightweight run counters.
type Metrics struct {
	eventCounts  [maxEventKind + 1]uint64
	actionCounts [maxActionKind + 1]uint64
	fills        uint64
	rejects      uint64
	queueDrops   uint64
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	EventCounts  map[bus.EventKind]uint64
	ActionCounts map[bus.ActionKind]uint64
	Fills        uint64
	Rejects      uint64
	QueueDrops   uint64
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveEvent counts one produced event.
func (m *Metrics) ObserveEvent(kind bus.EventKind) {
	if m == nil {
		return
	}
	if idx := int(kind); idx >= 0 && idx < len(m.eventCounts) {
		atomic.AddUint64(&m.eventCounts[idx], 1)
	}
}

// ObserveAction counts one handled action.
func (m *Metrics) ObserveAction(kind bus.ActionKind) {
	if m == nil {
		return
	}
	if idx := int(kind); idx >= 0 && idx < len(m.actionCounts) {
		atomic.AddUint64(&m.actionCounts[idx], 1)
	}
}

// IncFill counts one simulated fill.
func (m *Metrics) IncFill() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.fills, 1)
}

// IncReject counts one simulated reject.
func (m *Metrics) IncReject() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.rejects, 1)
}

// IncQueueDrop counts one dropped message.
func (m *Metrics) IncQueueDrop() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.queueDrops, 1)
}

// Snapshot captures the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		EventCounts:  make(map[bus.EventKind]uint64),
		ActionCounts: make(map[bus.ActionKind]uint64),
	}
	if m == nil {
		return snap
	}
	for i := range m.eventCounts {
		if v := atomic.LoadUint64(&m.eventCounts[i]); v > 0 {
			snap.EventCounts[bus.EventKind(i)] = v
		}
	}
	for i := range m.actionCounts {
		if v := atomic.LoadUint64(&m.actionCounts[i]); v > 0 {
			snap.ActionCounts[bus.ActionKind(i)] = v
		}
	}
	snap.Fills = atomic.LoadUint64(&m.fills)
	snap.Rejects = atomic.LoadUint64(&m.rejects)
	snap.QueueDrops = atomic.LoadUint64(&m.queueDrops)
	return snap
}
