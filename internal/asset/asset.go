package asset

import (
	"github.com/arsvincere/avin-sub002/internal/bus"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

// Asset is the per-instrument market data state a strategy reads. It is
// mutated only by its owning task in response to bar events.
type Asset struct {
	iid    schema.Iid
	charts map[schema.Timeframe]*Chart
}

// New creates an asset with no charts loaded.
func New(iid schema.Iid) *Asset {
	return &Asset{
		iid:    iid,
		charts: make(map[schema.Timeframe]*Chart),
	}
}

// Iid returns the instrument id.
func (a *Asset) Iid() schema.Iid {
	return a.iid
}

// LoadChart creates an empty chart for the timeframe, replacing any
// existing one.
func (a *Asset) LoadChart(tf schema.Timeframe) *Chart {
	c := NewChart(tf)
	a.charts[tf] = c
	return c
}

// Chart returns the chart for a timeframe, if loaded.
func (a *Asset) Chart(tf schema.Timeframe) (*Chart, bool) {
	c, ok := a.charts[tf]
	return c, ok
}

// BarEvent feeds a bar event into every loaded chart. Events for other
// instruments are ignored.
func (a *Asset) BarEvent(e bus.Event) {
	if e.Kind != bus.EventBar || e.Iid != a.iid {
		return
	}
	for _, c := range a.charts {
		c.AddBar(e.Bar)
	}
}
