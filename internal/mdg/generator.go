package mdg

import (
	"fmt"
	"math/rand"

	"github.com/arsvincere/avin-sub002/internal/schema"
)

// Generator produces a synthetic bar series as a seeded random walk.
// The same configuration always yields the same series, which makes
// generated data usable for reproducible backtests.
type Generator struct {
	rng        *rand.Rand
	tf         schema.Timeframe
	ts         int64
	price      float64
	volatility float64
	baseVolume int64
}

// Config describes one synthetic series.
type Config struct {
	Seed       int64
	Timeframe  schema.Timeframe
	StartTs    int64
	StartPrice float64
	Volatility float64
	BaseVolume int64
}

// NewGenerator creates a generator positioned at the series start.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.StartPrice <= 0 {
		return nil, fmt.Errorf("%w: start price %f", schema.ErrInvalidValue, cfg.StartPrice)
	}
	if cfg.Timeframe == 0 {
		cfg.Timeframe = schema.Timeframe1M
	}
	if cfg.Volatility <= 0 {
		cfg.Volatility = 0.01
	}
	if cfg.BaseVolume <= 0 {
		cfg.BaseVolume = 100
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		tf:         cfg.Timeframe,
		ts:         cfg.StartTs,
		price:      cfg.StartPrice,
		volatility: cfg.Volatility,
		baseVolume: cfg.BaseVolume,
	}, nil
}

// Next produces the next bar in the series.
func (g *Generator) Next() schema.Bar {
	open := g.price
	drift := 1 + g.volatility*(g.rng.Float64()*2-1)
	close := open * drift
	high := open
	if close > high {
		high = close
	}
	high *= 1 + g.volatility*g.rng.Float64()/2
	low := open
	if close < low {
		low = close
	}
	low *= 1 - g.volatility*g.rng.Float64()/2

	bar := schema.Bar{
		Ts:     g.ts,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: g.baseVolume + g.rng.Int63n(g.baseVolume),
	}
	g.ts += g.tf.Duration().Nanoseconds()
	g.price = close
	return bar
}

// Bars produces the next n bars.
func (g *Generator) Bars(n int) []schema.Bar {
	out := make([]schema.Bar, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Next())
	}
	return out
}
