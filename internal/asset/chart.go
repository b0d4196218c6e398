package asset

import "github.com/arsvincere/avin-sub002/internal/schema"

// Chart holds bars of one timeframe, aggregated from base-resolution
// input. The in-progress bar is exposed separately until its period ends.
type Chart struct {
	tf      schema.Timeframe
	bars    []schema.Bar
	current schema.Bar
	hasCur  bool
}

// NewChart creates an empty chart for a timeframe.
func NewChart(tf schema.Timeframe) *Chart {
	return &Chart{tf: tf}
}

// Timeframe returns the chart's timeframe.
func (c *Chart) Timeframe() schema.Timeframe {
	return c.tf
}

// AddBar merges one base-resolution bar into the chart.
func (c *Chart) AddBar(base schema.Bar) {
	bucket := base.Ts - base.Ts%c.tf.Duration().Nanoseconds()
	if c.hasCur && c.current.Ts == bucket {
		c.current = c.current.Join(base)
		return
	}
	if c.hasCur {
		c.bars = append(c.bars, c.current)
	}
	c.current = base
	c.current.Ts = bucket
	c.hasCur = true
}

// Bars returns the completed bars in time order.
func (c *Chart) Bars() []schema.Bar {
	return c.bars
}

// Last returns the newest bar, preferring the in-progress one.
func (c *Chart) Last() (schema.Bar, bool) {
	if c.hasCur {
		return c.current, true
	}
	if len(c.bars) == 0 {
		return schema.Bar{}, false
	}
	return c.bars[len(c.bars)-1], true
}

// Len returns the number of completed bars.
func (c *Chart) Len() int {
	return len(c.bars)
}
