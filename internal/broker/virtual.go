package broker

import (
	"fmt"

	"github.com/yanun0323/logs"

	"github.com/arsvincere/avin-sub002/internal/bus"
	"github.com/arsvincere/avin-sub002/internal/obs"
	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

// DefaultAccount is the static identity the simulator answers
// GetAccount with.
var DefaultAccount = schema.Account{Name: "virtual", BrokerID: "sim"}

// Config describes one simulated run.
type Config struct {
	Account        schema.Account
	Iid            schema.Iid
	CommissionRate float64
	Source         BarSource
	Metrics        *obs.Metrics
}

// VirtualBroker replays historical base-resolution bars and turns posted
// orders into deterministic fills. Given the same bar sequence and
// commission rate it always produces the same event stream.
//
// The fill policy is fixed:
//   - a market order fills at the close of the bar current when the
//     action is handled;
//   - a limit order fills at the limit price on the first bar whose
//     high/low range touches it, the current bar included;
//   - a stop order triggers on the first bar whose range touches the
//     stop price; a triggered market order fills at that bar's close.
//
// Commission is CommissionRate x |value|. Decisions only ever use bars
// at or before the current simulated time.
type VirtualBroker struct {
	account schema.Account
	iid     schema.Iid
	rate    float64
	source  BarSource
	metrics *obs.Metrics

	cur    schema.Bar
	hasBar bool
	nextID uint64

	pendingLimits []*order.Limit
	pendingStops  []*order.Stop
	queue         []bus.Event
	subs          map[string]struct{}
}

// NewVirtual creates a simulated counterparty for one instrument.
func NewVirtual(cfg Config) (*VirtualBroker, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("%w: bar source is nil", schema.ErrInvalidValue)
	}
	if cfg.Iid.IsZero() {
		return nil, fmt.Errorf("%w: instrument id is empty", schema.ErrInvalidValue)
	}
	if cfg.CommissionRate < 0 {
		return nil, fmt.Errorf("%w: commission rate %f", schema.ErrInvalidValue, cfg.CommissionRate)
	}
	account := cfg.Account
	if account == (schema.Account{}) {
		account = DefaultAccount
	}
	return &VirtualBroker{
		account: account,
		iid:     cfg.Iid,
		rate:    cfg.CommissionRate,
		source:  cfg.Source,
		metrics: cfg.Metrics,
		subs:    make(map[string]struct{}),
	}, nil
}

// Account returns the static virtual account.
func (b *VirtualBroker) Account() schema.Account {
	return b.account
}

// NextEvent pops the next event: queued order events first, then the
// next bar. Exhaustion of the bar source is the termination signal.
func (b *VirtualBroker) NextEvent() (bus.Event, bool, error) {
	if len(b.queue) > 0 {
		e := b.queue[0]
		b.queue = b.queue[1:]
		return e, true, nil
	}

	bar, ok, err := b.source.Next()
	if err != nil {
		return bus.Event{}, false, err
	}
	if !ok {
		return bus.Event{}, false, nil
	}
	b.cur = bar
	b.hasBar = true

	// Order events caused by this bar queue up behind the bar event,
	// so a strategy never reacts to a fill before seeing the bar that
	// produced it.
	b.checkPending(bar)
	b.metrics.ObserveEvent(bus.EventBar)
	return bus.BarEvent(b.iid, bar), true, nil
}

// HandleAction applies one strategy command against the current
// simulated state.
func (b *VirtualBroker) HandleAction(a bus.Action) error {
	b.metrics.ObserveAction(a.Kind)
	switch a.Kind {
	case bus.ActionPostOrder:
		return b.post(a.Order)
	case bus.ActionCancelOrder:
		return b.cancel(a.Order)
	case bus.ActionSubscribe:
		b.subs[a.Iid.String()] = struct{}{}
		return nil
	case bus.ActionUnsubscribe:
		delete(b.subs, a.Iid.String())
		return nil
	case bus.ActionGetAccount, bus.ActionTradeOpened:
		// Account is served statically via Account; trade
		// notifications need no counterparty work.
		return nil
	case bus.ActionGetBars:
		// Historical bars are not served by this boundary; the data
		// layer owns them.
		return nil
	default:
		return fmt.Errorf("%w: action kind %d", schema.ErrInvalidValue, a.Kind)
	}
}

func (b *VirtualBroker) post(o order.Order) error {
	if o == nil {
		return fmt.Errorf("%w: post with nil order", schema.ErrInvalidValue)
	}
	if !b.hasBar {
		return b.reject(o, "no market data")
	}
	if o.OrderIid() != b.iid {
		return b.reject(o, fmt.Sprintf("unknown instrument %s", o.OrderIid()))
	}

	b.nextID++
	brokerID := fmt.Sprintf("sim-%d", b.nextID)

	switch v := o.(type) {
	case *order.Market:
		if err := v.Post(brokerID); err != nil {
			return err
		}
		b.emitOrder(v)
		b.fillMarket(v, b.cur)
	case *order.Limit:
		if err := v.Post(brokerID); err != nil {
			return err
		}
		b.emitOrder(v)
		if b.cur.Contains(v.Price) {
			b.fillLimit(v, b.cur.Ts)
		} else {
			b.pendingLimits = append(b.pendingLimits, v)
		}
	case *order.Stop:
		if err := v.Post(brokerID); err != nil {
			return err
		}
		b.emitOrder(v)
		if b.cur.Contains(v.StopPrice) {
			b.trigger(v, b.cur)
		} else {
			b.pendingStops = append(b.pendingStops, v)
		}
	default:
		return fmt.Errorf("%w: order kind %s", schema.ErrInvalidValue, o.OrderKind())
	}
	return nil
}

func (b *VirtualBroker) cancel(o order.Order) error {
	switch v := o.(type) {
	case *order.Market:
		return fmt.Errorf("%w: market order cannot be canceled", schema.ErrInvalidValue)
	case *order.Limit:
		for i, pending := range b.pendingLimits {
			if pending != v {
				continue
			}
			if err := v.Cancel(); err != nil {
				return err
			}
			b.pendingLimits = append(b.pendingLimits[:i], b.pendingLimits[i+1:]...)
			b.emitOrder(v)
			return nil
		}
		return fmt.Errorf("%w: order %s", schema.ErrNotFound, v.BrokerID)
	case *order.Stop:
		for i, pending := range b.pendingStops {
			if pending != v {
				continue
			}
			if err := v.Cancel(); err != nil {
				return err
			}
			b.pendingStops = append(b.pendingStops[:i], b.pendingStops[i+1:]...)
			b.emitOrder(v)
			return nil
		}
		return fmt.Errorf("%w: order %s", schema.ErrNotFound, v.BrokerID)
	default:
		return fmt.Errorf("%w: cancel with nil order", schema.ErrInvalidValue)
	}
}

// checkPending resolves resting orders against a newly arrived bar.
// Limits first, then stops; live orders born from a trigger are checked
// against the same bar immediately.
func (b *VirtualBroker) checkPending(bar schema.Bar) {
	var limits []*order.Limit
	for _, o := range b.pendingLimits {
		if bar.Contains(o.Price) {
			b.fillLimit(o, bar.Ts)
		} else {
			limits = append(limits, o)
		}
	}
	b.pendingLimits = limits

	var stops []*order.Stop
	for _, o := range b.pendingStops {
		if bar.Contains(o.StopPrice) {
			b.trigger(o, bar)
		} else {
			stops = append(stops, o)
		}
	}
	b.pendingStops = stops
}

func (b *VirtualBroker) trigger(o *order.Stop, bar schema.Bar) {
	live, err := o.Trigger()
	if err != nil {
		logs.Errorf("virtual broker: trigger stop %s, err: %+v", o.BrokerID, err)
		return
	}
	b.emitOrder(o)
	switch v := live.(type) {
	case *order.Market:
		b.emitOrder(v)
		b.fillMarket(v, bar)
	case *order.Limit:
		b.emitOrder(v)
		if bar.Contains(v.Price) {
			b.fillLimit(v, bar.Ts)
		} else {
			b.pendingLimits = append(b.pendingLimits, v)
		}
	}
}

func (b *VirtualBroker) fillMarket(o *order.Market, bar schema.Bar) {
	price := bar.Close
	if err := o.AddTransaction(schema.Transaction{Quantity: o.Lots, Price: price}); err != nil {
		logs.Errorf("virtual broker: add transaction %s, err: %+v", o.BrokerID, err)
		return
	}
	commission := b.commission(o.Lots, price)
	if err := o.Fill(bar.Ts, commission); err != nil {
		logs.Errorf("virtual broker: fill %s, err: %+v", o.BrokerID, err)
		return
	}
	b.metrics.IncFill()
	b.emitOrder(o)
}

func (b *VirtualBroker) fillLimit(o *order.Limit, ts int64) {
	if err := o.AddTransaction(schema.Transaction{Quantity: o.Lots, Price: o.Price}); err != nil {
		logs.Errorf("virtual broker: add transaction %s, err: %+v", o.BrokerID, err)
		return
	}
	commission := b.commission(o.Lots, o.Price)
	if err := o.Fill(ts, commission); err != nil {
		logs.Errorf("virtual broker: fill %s, err: %+v", o.BrokerID, err)
		return
	}
	b.metrics.IncFill()
	b.emitOrder(o)
}

func (b *VirtualBroker) reject(o order.Order, reason string) error {
	var err error
	switch v := o.(type) {
	case *order.Market:
		err = v.Reject(reason)
	case *order.Limit:
		err = v.Reject(reason)
	case *order.Stop:
		err = v.Reject(reason)
	default:
		return fmt.Errorf("%w: order kind %s", schema.ErrInvalidValue, o.OrderKind())
	}
	if err != nil {
		return err
	}
	b.metrics.IncReject()
	b.emitOrder(o)
	return nil
}

func (b *VirtualBroker) emitOrder(o order.Order) {
	b.metrics.ObserveEvent(bus.EventOrder)
	b.queue = append(b.queue, bus.OrderEvent(b.iid, o))
}

func (b *VirtualBroker) commission(lots int64, price float64) float64 {
	value := float64(lots) * price
	if value < 0 {
		value = -value
	}
	return b.rate * value
}
