package order

import (
	"errors"

	"github.com/arsvincere/avin-sub002/internal/schema"
)

var ErrInvalidTransition = errors.New("invalid order state transition")

// Kind discriminates the order variants.
type Kind uint16

const (
	KindUnknown Kind = iota
	KindMarket
	KindLimit
	KindStop
)

func (k Kind) String() string {
	switch k {
	case KindMarket:
		return "Market"
	case KindLimit:
		return "Limit"
	case KindStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// Order is the view shared by all order kinds. Each kind keeps its own
// status progression; transitions are guarded methods on the concrete
// types and return ErrInvalidTransition when called out of order.
type Order interface {
	OrderKind() Kind
	OrderIid() schema.Iid
	OrderDirection() schema.Direction
	OrderLots() int64

	// OrderBrokerID returns the counterparty-assigned id, empty until
	// the order is posted.
	OrderBrokerID() string

	// Filled reports whether the order reached its filled state.
	Filled() bool
	// FilledOperation returns the reduced operation. Valid only once
	// Filled reports true; the zero value otherwise.
	FilledOperation() schema.Operation

	// Clone returns an independent copy that later transitions on the
	// original cannot reach.
	Clone() Order
}
