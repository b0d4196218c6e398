package trade

import (
	"errors"

	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

var (
	ErrInvalidTransition = errors.New("invalid trade state transition")
	ErrOrderNotFilled    = errors.New("order is not filled")
)

// Kind is the position direction.
type Kind uint16

const (
	KindUnknown Kind = iota
	KindLong
	KindShort
)

func (k Kind) String() string {
	switch k {
	case KindLong:
		return "Long"
	case KindShort:
		return "Short"
	default:
		return "Unknown"
	}
}

// Status tracks the trade lifecycle.
type Status uint16

const (
	StatusNew Status = iota
	StatusOpened
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusOpened:
		return "Opened"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Trade is a position aggregate owning the filled orders that opened,
// extended and closed it. Exactly one order opens a trade; a single
// closing fill freezes the result.
type Trade struct {
	StartTs  int64
	Strategy string
	Kind     Kind
	Iid      schema.Iid

	Status Status
	Orders []order.Order
	Result float64
}

// New creates a trade in the New state, before any order is attached.
func New(startTs int64, strategy string, kind Kind, iid schema.Iid) *Trade {
	return &Trade{
		StartTs:  startTs,
		Strategy: strategy,
		Kind:     kind,
		Iid:      iid,
		Status:   StatusNew,
	}
}

// Open moves New -> Opened with the first filled order.
func (t *Trade) Open(o order.Order) error {
	if t.Status != StatusNew {
		return ErrInvalidTransition
	}
	if !o.Filled() {
		return ErrOrderNotFilled
	}
	t.Orders = append(t.Orders, o)
	t.Status = StatusOpened
	return nil
}

// AddOrder attaches another filled order to an opened trade.
func (t *Trade) AddOrder(o order.Order) error {
	if t.Status != StatusOpened {
		return ErrInvalidTransition
	}
	if !o.Filled() {
		return ErrOrderNotFilled
	}
	t.Orders = append(t.Orders, o)
	return nil
}

// Close moves Opened -> Closed and freezes the realized result: the net
// proceeds of all owned operations (sell value minus buy cost) minus
// commission. A closed trade with no orders is a caller bug.
func (t *Trade) Close() error {
	if t.Status != StatusOpened {
		return ErrInvalidTransition
	}
	if len(t.Orders) == 0 {
		panic("trade: close with no orders")
	}
	t.Result = t.computeResult()
	t.Status = StatusClosed
	return nil
}

func (t *Trade) computeResult() float64 {
	var result float64
	for _, o := range t.Orders {
		if !o.Filled() {
			continue
		}
		op := o.FilledOperation()
		switch o.OrderDirection() {
		case schema.DirectionSell:
			result += op.Value
		case schema.DirectionBuy:
			result -= op.Value
		}
		result -= op.Commission
	}
	return result
}
