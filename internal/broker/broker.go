package broker

import (
	"github.com/arsvincere/avin-sub002/internal/bus"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

// Broker is the counterparty contract shared by the simulator and a live
// connector: an action consumer and event producer. Code driving a run
// never learns which one it talks to.
type Broker interface {
	Account() schema.Account
	HandleAction(a bus.Action) error

	// NextEvent produces the next event in stream order. The second
	// return is false once the stream is exhausted.
	NextEvent() (bus.Event, bool, error)
}

// BarSource feeds base-resolution bars in time order.
type BarSource interface {
	Next() (schema.Bar, bool, error)
}

// RangeBarSource narrows an underlying source to [begin, end). A zero
// end means unbounded.
type RangeBarSource struct {
	src   BarSource
	begin int64
	end   int64
}

// NewRangeBarSource wraps a source with a time window.
func NewRangeBarSource(src BarSource, begin, end int64) *RangeBarSource {
	return &RangeBarSource{src: src, begin: begin, end: end}
}

func (r *RangeBarSource) Next() (schema.Bar, bool, error) {
	for {
		bar, ok, err := r.src.Next()
		if err != nil || !ok {
			return schema.Bar{}, false, err
		}
		if bar.Ts < r.begin {
			continue
		}
		if r.end != 0 && bar.Ts >= r.end {
			return schema.Bar{}, false, nil
		}
		return bar, true, nil
	}
}

// SliceBarSource replays a fixed bar sequence.
type SliceBarSource struct {
	bars  []schema.Bar
	index int
}

// NewSliceBarSource wraps a bar slice.
func NewSliceBarSource(bars []schema.Bar) *SliceBarSource {
	return &SliceBarSource{bars: bars}
}

func (s *SliceBarSource) Next() (schema.Bar, bool, error) {
	if s.index >= len(s.bars) {
		return schema.Bar{}, false, nil
	}
	bar := s.bars[s.index]
	s.index++
	return bar, true, nil
}
