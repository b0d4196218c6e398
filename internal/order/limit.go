package order

import "github.com/arsvincere/avin-sub002/internal/schema"

// LimitStatus tracks the lifecycle of a limit order.
type LimitStatus uint16

const (
	LimitNew LimitStatus = iota
	LimitPosted
	LimitFilled
	LimitRejected
	LimitCanceled
)

func (s LimitStatus) String() string {
	switch s {
	case LimitNew:
		return "New"
	case LimitPosted:
		return "Posted"
	case LimitFilled:
		return "Filled"
	case LimitRejected:
		return "Rejected"
	case LimitCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Limit is an order resting at a fixed price until the market touches it.
type Limit struct {
	Account   schema.Account
	Iid       schema.Iid
	Direction schema.Direction
	Lots      int64
	Price     float64

	Status       LimitStatus
	BrokerID     string
	Transactions []schema.Transaction
	Operation    schema.Operation
	Reason       string
}

// NewLimit creates a limit order in the New state.
func NewLimit(account schema.Account, iid schema.Iid, direction schema.Direction, lots int64, price float64) *Limit {
	return &Limit{
		Account:   account,
		Iid:       iid,
		Direction: direction,
		Lots:      lots,
		Price:     price,
		Status:    LimitNew,
	}
}

// Post moves New -> Posted and records the broker-assigned id.
func (o *Limit) Post(brokerID string) error {
	if o.Status != LimitNew {
		return ErrInvalidTransition
	}
	o.BrokerID = brokerID
	o.Status = LimitPosted
	return nil
}

// AddTransaction accumulates a fill. Only a posted order can fill.
func (o *Limit) AddTransaction(t schema.Transaction) error {
	if o.Status != LimitPosted {
		return ErrInvalidTransition
	}
	o.Transactions = append(o.Transactions, t)
	return nil
}

// Fill moves Posted -> Filled, reducing all accumulated transactions
// into one operation.
func (o *Limit) Fill(ts int64, commission float64) error {
	if o.Status != LimitPosted {
		return ErrInvalidTransition
	}
	o.Operation = schema.NewOperation(ts, o.Transactions, commission)
	o.Status = LimitFilled
	return nil
}

// Cancel moves Posted -> Canceled. Transactions from partial fills stay
// on the order.
func (o *Limit) Cancel() error {
	if o.Status != LimitPosted {
		return ErrInvalidTransition
	}
	o.Status = LimitCanceled
	return nil
}

// Reject moves New -> Rejected, storing the reason verbatim.
func (o *Limit) Reject(reason string) error {
	if o.Status != LimitNew {
		return ErrInvalidTransition
	}
	o.Reason = reason
	o.Status = LimitRejected
	return nil
}

// Clone returns an independent copy, accumulated transactions included.
func (o *Limit) Clone() Order {
	c := *o
	c.Transactions = append([]schema.Transaction(nil), o.Transactions...)
	return &c
}

func (o *Limit) OrderKind() Kind                  { return KindLimit }
func (o *Limit) OrderIid() schema.Iid             { return o.Iid }
func (o *Limit) OrderDirection() schema.Direction { return o.Direction }
func (o *Limit) OrderLots() int64                 { return o.Lots }
func (o *Limit) OrderBrokerID() string            { return o.BrokerID }
func (o *Limit) Filled() bool                     { return o.Status == LimitFilled }
func (o *Limit) FilledOperation() schema.Operation {
	if o.Status != LimitFilled {
		return schema.Operation{}
	}
	return o.Operation
}
