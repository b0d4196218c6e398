package risk

import (
	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

// Config defines simple pre-trade limits. Zero values disable a check.
type Config struct {
	KillSwitch    bool    `json:"killSwitch"`
	MaxOrderLots  int64   `json:"maxOrderLots"`
	MaxOrderValue float64 `json:"maxOrderValue"`
	MaxPosition   int64   `json:"maxPosition"`
}

// Reason explains a denied order.
type Reason uint16

const (
	ReasonNone Reason = iota
	ReasonKillSwitch
	ReasonMaxLots
	ReasonMaxValue
	ReasonPositionLimit
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonKillSwitch:
		return "KillSwitch"
	case ReasonMaxLots:
		return "MaxLots"
	case ReasonMaxValue:
		return "MaxValue"
	case ReasonPositionLimit:
		return "PositionLimit"
	default:
		return "Unknown"
	}
}

// Engine evaluates orders against static limits and the net position it
// has observed so far. Not safe for concurrent use; it belongs to the
// run loop.
type Engine struct {
	cfg      Config
	position int64
}

// NewEngine creates a risk engine with static limits.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Evaluate checks an order before it is posted. ReasonNone means allow.
// The value check uses the order's own price and so only applies to
// limit and stop orders.
func (e *Engine) Evaluate(o order.Order) Reason {
	if e.cfg.KillSwitch {
		return ReasonKillSwitch
	}
	lots := o.OrderLots()
	if e.cfg.MaxOrderLots > 0 && lots > e.cfg.MaxOrderLots {
		return ReasonMaxLots
	}
	if e.cfg.MaxOrderValue > 0 {
		if price := orderPrice(o); price > 0 && float64(lots)*price > e.cfg.MaxOrderValue {
			return ReasonMaxValue
		}
	}
	if e.cfg.MaxPosition > 0 {
		next := e.position
		switch o.OrderDirection() {
		case schema.DirectionBuy:
			next += lots
		case schema.DirectionSell:
			next -= lots
		}
		if next < 0 {
			next = -next
		}
		if next > e.cfg.MaxPosition {
			return ReasonPositionLimit
		}
	}
	return ReasonNone
}

// Observe updates the net position from a filled order.
func (e *Engine) Observe(o order.Order) {
	if o == nil || !o.Filled() {
		return
	}
	op := o.FilledOperation()
	switch o.OrderDirection() {
	case schema.DirectionBuy:
		e.position += op.Quantity
	case schema.DirectionSell:
		e.position -= op.Quantity
	}
}

// Position returns the observed net position in lots.
func (e *Engine) Position() int64 {
	return e.position
}

func orderPrice(o order.Order) float64 {
	switch v := o.(type) {
	case *order.Limit:
		return v.Price
	case *order.Stop:
		if v.ExecPrice != 0 {
			return v.ExecPrice
		}
		return v.StopPrice
	default:
		return 0
	}
}
