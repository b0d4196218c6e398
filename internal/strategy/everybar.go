package strategy

import (
	"github.com/yanun0323/logs"

	"github.com/arsvincere/avin-sub002/internal/asset"
	"github.com/arsvincere/avin-sub002/internal/bus"
	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/schema"
	"github.com/arsvincere/avin-sub002/internal/trade"
)

// EveryBar is a deterministic reference strategy: open a long market
// position, hold it for a fixed number of bars, close it with a market
// order, repeat. It exists to exercise the full order/trade/broker path
// and to make runs reproducible end to end.
type EveryBar struct {
	Lots     int64
	HoldBars int

	actions *bus.Queue[bus.Action]
	account schema.Account
	iid     schema.Iid

	pendingOpen  *order.Market
	pendingClose *order.Market
	cur          *trade.Trade
	barsHeld     int
}

// NewEveryBar creates the strategy with sane defaults for zero values.
func NewEveryBar(lots int64, holdBars int) *EveryBar {
	if lots <= 0 {
		lots = 1
	}
	if holdBars <= 0 {
		holdBars = 1
	}
	return &EveryBar{Lots: lots, HoldBars: holdBars}
}

func (s *EveryBar) Name() string {
	return "everybar"
}

func (s *EveryBar) Init(actions *bus.Queue[bus.Action], account schema.Account, as *asset.Asset) error {
	s.actions = actions
	s.account = account
	s.iid = as.Iid()
	return nil
}

func (s *EveryBar) Process(as *asset.Asset) {
	if s.cur != nil {
		if s.pendingClose != nil {
			return
		}
		s.barsHeld++
		if s.barsHeld < s.HoldBars {
			return
		}
		o := order.NewMarket(s.account, s.iid, schema.DirectionSell, s.Lots)
		s.pendingClose = o
		s.publish(bus.PostOrder(o))
		return
	}

	if s.pendingOpen != nil {
		return
	}
	o := order.NewMarket(s.account, s.iid, schema.DirectionBuy, s.Lots)
	s.pendingOpen = o
	s.publish(bus.PostOrder(o))
}

// OrderEvent matches fill snapshots against the pending orders by
// broker id; an order that never filled (posted, rejected) leaves the
// strategy waiting.
func (s *EveryBar) OrderEvent(e bus.Event) {
	if e.Kind != bus.EventOrder || e.Order == nil || !e.Order.Filled() {
		return
	}

	if s.pendingOpen != nil && e.Order.OrderBrokerID() == s.pendingOpen.BrokerID {
		op := e.Order.FilledOperation()
		t := trade.New(op.Timestamp, s.Name(), trade.KindLong, s.iid)
		if err := t.Open(e.Order); err != nil {
			logs.Errorf("everybar: open trade, err: %+v", err)
			s.pendingOpen = nil
			return
		}
		s.cur = t
		s.pendingOpen = nil
		s.barsHeld = 0
		s.publish(bus.TradeOpened(t))
		return
	}

	if s.pendingClose != nil && e.Order.OrderBrokerID() == s.pendingClose.BrokerID {
		if err := s.cur.AddOrder(e.Order); err != nil {
			logs.Errorf("everybar: add closing order, err: %+v", err)
			return
		}
		if err := s.cur.Close(); err != nil {
			logs.Errorf("everybar: close trade, err: %+v", err)
			return
		}
		s.publish(bus.TradeClosed(s.cur))
		s.cur = nil
		s.pendingClose = nil
	}
}

func (s *EveryBar) publish(a bus.Action) {
	if err := s.actions.TryPublish(a); err != nil {
		logs.Errorf("everybar: publish %s, err: %+v", a.Kind, err)
	}
}
