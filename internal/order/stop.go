package order

import "github.com/arsvincere/avin-sub002/internal/schema"

// StopStatus tracks the lifecycle of a stop order.
type StopStatus uint16

const (
	StopNew StopStatus = iota
	StopPosted
	StopTriggered
	StopRejected
	StopCanceled
)

func (s StopStatus) String() string {
	switch s {
	case StopNew:
		return "New"
	case StopPosted:
		return "Posted"
	case StopTriggered:
		return "Triggered"
	case StopRejected:
		return "Rejected"
	case StopCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Stop is a sleeping order that becomes a live market or limit order once
// the stop price is touched. A stop itself never fills.
type Stop struct {
	Account   schema.Account
	Iid       schema.Iid
	Direction schema.Direction
	Lots      int64
	StopPrice float64

	// ExecPrice is the limit price of the order created on trigger.
	// Zero means the stop triggers into a market order.
	ExecPrice float64

	Status   StopStatus
	BrokerID string
	Reason   string
}

// NewStop creates a stop order in the New state.
func NewStop(account schema.Account, iid schema.Iid, direction schema.Direction, lots int64, stopPrice, execPrice float64) *Stop {
	return &Stop{
		Account:   account,
		Iid:       iid,
		Direction: direction,
		Lots:      lots,
		StopPrice: stopPrice,
		ExecPrice: execPrice,
		Status:    StopNew,
	}
}

// Post moves New -> Posted and records the broker-assigned id.
func (o *Stop) Post(brokerID string) error {
	if o.Status != StopNew {
		return ErrInvalidTransition
	}
	o.BrokerID = brokerID
	o.Status = StopPosted
	return nil
}

// Trigger moves Posted -> Triggered and returns the live order created by
// the touch: a posted limit when ExecPrice is set, a posted market
// otherwise. The returned order carries the same broker id.
func (o *Stop) Trigger() (Order, error) {
	if o.Status != StopPosted {
		return nil, ErrInvalidTransition
	}
	o.Status = StopTriggered

	if o.ExecPrice != 0 {
		live := NewLimit(o.Account, o.Iid, o.Direction, o.Lots, o.ExecPrice)
		if err := live.Post(o.BrokerID); err != nil {
			return nil, err
		}
		return live, nil
	}
	live := NewMarket(o.Account, o.Iid, o.Direction, o.Lots)
	if err := live.Post(o.BrokerID); err != nil {
		return nil, err
	}
	return live, nil
}

// Cancel moves Posted -> Canceled.
func (o *Stop) Cancel() error {
	if o.Status != StopPosted {
		return ErrInvalidTransition
	}
	o.Status = StopCanceled
	return nil
}

// Reject moves New -> Rejected, storing the reason verbatim.
func (o *Stop) Reject(reason string) error {
	if o.Status != StopNew {
		return ErrInvalidTransition
	}
	o.Reason = reason
	o.Status = StopRejected
	return nil
}

// Clone returns an independent copy.
func (o *Stop) Clone() Order {
	c := *o
	return &c
}

func (o *Stop) OrderKind() Kind                   { return KindStop }
func (o *Stop) OrderIid() schema.Iid              { return o.Iid }
func (o *Stop) OrderDirection() schema.Direction  { return o.Direction }
func (o *Stop) OrderLots() int64                  { return o.Lots }
func (o *Stop) OrderBrokerID() string             { return o.BrokerID }
func (o *Stop) Filled() bool                      { return false }
func (o *Stop) FilledOperation() schema.Operation { return schema.Operation{} }
