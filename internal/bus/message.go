package bus

import (
	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/schema"
	"github.com/arsvincere/avin-sub002/internal/trade"
)

// ActionKind discriminates outbound strategy commands.
type ActionKind uint16

const (
	ActionUnknown ActionKind = iota
	ActionPostOrder
	ActionCancelOrder
	ActionSubscribe
	ActionUnsubscribe
	ActionTradeOpened
	ActionTradeClosed
	ActionGetAccount
	ActionGetBars
)

func (k ActionKind) String() string {
	switch k {
	case ActionPostOrder:
		return "PostOrder"
	case ActionCancelOrder:
		return "CancelOrder"
	case ActionSubscribe:
		return "Subscribe"
	case ActionUnsubscribe:
		return "Unsubscribe"
	case ActionTradeOpened:
		return "TradeOpened"
	case ActionTradeClosed:
		return "TradeClosed"
	case ActionGetAccount:
		return "GetAccount"
	case ActionGetBars:
		return "GetBars"
	default:
		return "Unknown"
	}
}

// Action is an outbound command from a strategy to the execution layer.
// Payloads are owned by the action; they cross channel boundaries.
type Action struct {
	Kind  ActionKind
	Iid   schema.Iid
	Order order.Order
	Trade *trade.Trade

	// GetBars request range.
	Timeframe schema.Timeframe
	Begin     int64
	End       int64
}

// PostOrder builds a post-order action.
func PostOrder(o order.Order) Action {
	return Action{Kind: ActionPostOrder, Iid: o.OrderIid(), Order: o}
}

// CancelOrder builds a cancel-order action.
func CancelOrder(o order.Order) Action {
	return Action{Kind: ActionCancelOrder, Iid: o.OrderIid(), Order: o}
}

// TradeClosed builds a closed-trade notification.
func TradeClosed(t *trade.Trade) Action {
	return Action{Kind: ActionTradeClosed, Iid: t.Iid, Trade: t}
}

// TradeOpened builds an opened-trade notification.
func TradeOpened(t *trade.Trade) Action {
	return Action{Kind: ActionTradeOpened, Iid: t.Iid, Trade: t}
}

// EventKind discriminates inbound notifications.
type EventKind uint16

const (
	EventUnknown EventKind = iota
	EventBar
	EventTic
	EventOrder
	EventOrderBook
)

func (k EventKind) String() string {
	switch k {
	case EventBar:
		return "Bar"
	case EventTic:
		return "Tic"
	case EventOrder:
		return "Order"
	case EventOrderBook:
		return "OrderBook"
	default:
		return "Unknown"
	}
}

// Event is an inbound notification delivered to a strategy. Payloads
// are owned snapshots: what a consumer reads is the state at emission
// time, not the producer's live objects.
type Event struct {
	Kind EventKind
	Iid  schema.Iid

	Bar   schema.Bar
	Tic   schema.Tic
	Order order.Order
	Book  schema.Book
}

// BarEvent wraps a bar.
func BarEvent(iid schema.Iid, bar schema.Bar) Event {
	return Event{Kind: EventBar, Iid: iid, Bar: bar}
}

// OrderEvent wraps an order state change. The order is snapshotted so
// later transitions on the live order cannot rewrite a queued event.
func OrderEvent(iid schema.Iid, o order.Order) Event {
	if o != nil {
		o = o.Clone()
	}
	return Event{Kind: EventOrder, Iid: iid, Order: o}
}
