package tester

import (
	"fmt"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"github.com/arsvincere/avin-sub002/internal/asset"
	"github.com/arsvincere/avin-sub002/internal/broker"
	"github.com/arsvincere/avin-sub002/internal/bus"
	"github.com/arsvincere/avin-sub002/internal/obs"
	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/risk"
	"github.com/arsvincere/avin-sub002/internal/schema"
	"github.com/arsvincere/avin-sub002/internal/strategy"
)

const actionQueueCap = 1024

// Tester runs backtests: it wires a virtual broker, an asset and a
// strategy into one event loop and collects closed trades into the
// test's trade list.
type Tester struct {
	root    string
	metrics *obs.Metrics
	risk    *risk.Engine
}

// NewTester creates a tester persisting results under root.
func NewTester(root string) *Tester {
	return &Tester{
		root:    root,
		metrics: obs.NewMetrics(),
	}
}

// WithRisk enables pre-trade limit checks. Denied orders are rejected
// before reaching the broker.
func (t *Tester) WithRisk(engine *risk.Engine) *Tester {
	t.risk = engine
	return t
}

// Metrics exposes the run counters.
func (t *Tester) Metrics() *obs.Metrics {
	return t.metrics
}

// Run executes one test with the given strategy against a bar source.
// The test's trade list is cleared first; the run is deterministic for a
// fixed bar sequence. On success the test is marked Complete and saved.
func (t *Tester) Run(test *Test, s strategy.Strategy, source broker.BarSource) error {
	if test == nil || s == nil || source == nil {
		return fmt.Errorf("%w: incomplete run setup", schema.ErrInvalidValue)
	}

	test.Status = StatusProcess
	test.TradeList.Clear()

	brk, err := broker.NewVirtual(broker.Config{
		Iid:            test.Iid,
		CommissionRate: test.Commission,
		Source:         broker.NewRangeBarSource(source, test.BeginTs, test.EndTs),
		Metrics:        t.metrics,
	})
	if err != nil {
		return errors.Wrap(err, "create virtual broker")
	}

	as := asset.New(test.Iid)
	as.LoadChart(schema.Timeframe1M)

	actions := bus.NewQueue[bus.Action](actionQueueCap)
	if err := s.Init(actions, brk.Account(), as); err != nil {
		return errors.Wrap(err, "init strategy")
	}

	logs.Infof("tester: run %s on %s", test.StrategyName, test.Iid)
	for {
		e, ok, err := brk.NextEvent()
		if err != nil {
			return errors.Wrap(err, "next event")
		}
		if !ok {
			break
		}

		switch e.Kind {
		case bus.EventBar:
			as.BarEvent(e)
			s.Process(as)
		case bus.EventOrder:
			if t.risk != nil {
				t.risk.Observe(e.Order)
			}
			s.OrderEvent(e)
		}

		t.drain(test, brk, s, actions)
	}
	t.drain(test, brk, s, actions)
	actions.Close()

	test.Status = StatusComplete
	if err := test.Save(t.root); err != nil {
		return errors.Wrap(err, "save test")
	}
	logs.Infof("tester: %s complete, %d trades", test.TradeList.Name, test.TradeList.Len())
	return nil
}

// drain forwards queued strategy actions. Trade lifecycle notifications
// stay here; posts pass the risk check first; everything else goes to
// the broker.
func (t *Tester) drain(test *Test, brk broker.Broker, s strategy.Strategy, actions *bus.Queue[bus.Action]) {
	for {
		a, ok := actions.TryNext()
		if !ok {
			return
		}
		switch a.Kind {
		case bus.ActionTradeClosed:
			test.TradeList.Add(a.Trade)
		case bus.ActionTradeOpened:
			logs.Infof("tester: trade opened %s %s", a.Trade.Kind, a.Iid)
		case bus.ActionPostOrder:
			if t.risk != nil {
				if reason := t.risk.Evaluate(a.Order); reason != risk.ReasonNone {
					t.denyOrder(a, s, reason)
					continue
				}
			}
			if err := brk.HandleAction(a); err != nil {
				logs.Errorf("tester: handle %s, err: %+v", a.Kind, err)
			}
		default:
			if err := brk.HandleAction(a); err != nil {
				logs.Errorf("tester: handle %s, err: %+v", a.Kind, err)
			}
		}
	}
}

// denyOrder rejects a risk-denied order and notifies the strategy the
// same way a broker reject would.
func (t *Tester) denyOrder(a bus.Action, s strategy.Strategy, reason risk.Reason) {
	var err error
	switch v := a.Order.(type) {
	case *order.Market:
		err = v.Reject(reason.String())
	case *order.Limit:
		err = v.Reject(reason.String())
	case *order.Stop:
		err = v.Reject(reason.String())
	}
	if err != nil {
		logs.Errorf("tester: reject denied order, err: %+v", err)
		return
	}
	logs.Infof("tester: order denied, reason: %s", reason)
	s.OrderEvent(bus.OrderEvent(a.Iid, a.Order))
}
