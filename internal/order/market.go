package order

import "github.com/arsvincere/avin-sub002/internal/schema"

// MarketStatus tracks the lifecycle of a market order.
// There is no cancel transition: a market order cannot be canceled.
type MarketStatus uint16

const (
	MarketNew MarketStatus = iota
	MarketPosted
	MarketFilled
	MarketRejected
)

func (s MarketStatus) String() string {
	switch s {
	case MarketNew:
		return "New"
	case MarketPosted:
		return "Posted"
	case MarketFilled:
		return "Filled"
	case MarketRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Market is an order executed at the counterparty's reference price.
type Market struct {
	Account   schema.Account
	Iid       schema.Iid
	Direction schema.Direction
	Lots      int64

	Status       MarketStatus
	BrokerID     string
	Transactions []schema.Transaction
	Operation    schema.Operation
	Reason       string
}

// NewMarket creates a market order in the New state.
func NewMarket(account schema.Account, iid schema.Iid, direction schema.Direction, lots int64) *Market {
	return &Market{
		Account:   account,
		Iid:       iid,
		Direction: direction,
		Lots:      lots,
		Status:    MarketNew,
	}
}

// Post moves New -> Posted and records the broker-assigned id.
func (o *Market) Post(brokerID string) error {
	if o.Status != MarketNew {
		return ErrInvalidTransition
	}
	o.BrokerID = brokerID
	o.Status = MarketPosted
	return nil
}

// AddTransaction accumulates a fill. Only a posted order can fill.
func (o *Market) AddTransaction(t schema.Transaction) error {
	if o.Status != MarketPosted {
		return ErrInvalidTransition
	}
	o.Transactions = append(o.Transactions, t)
	return nil
}

// Fill moves Posted -> Filled, reducing all accumulated transactions
// into one operation. Filling with no transactions is a caller bug.
func (o *Market) Fill(ts int64, commission float64) error {
	if o.Status != MarketPosted {
		return ErrInvalidTransition
	}
	o.Operation = schema.NewOperation(ts, o.Transactions, commission)
	o.Status = MarketFilled
	return nil
}

// Reject moves New -> Rejected, storing the reason verbatim.
func (o *Market) Reject(reason string) error {
	if o.Status != MarketNew {
		return ErrInvalidTransition
	}
	o.Reason = reason
	o.Status = MarketRejected
	return nil
}

// Clone returns an independent copy, accumulated transactions included.
func (o *Market) Clone() Order {
	c := *o
	c.Transactions = append([]schema.Transaction(nil), o.Transactions...)
	return &c
}

func (o *Market) OrderKind() Kind                  { return KindMarket }
func (o *Market) OrderIid() schema.Iid             { return o.Iid }
func (o *Market) OrderDirection() schema.Direction { return o.Direction }
func (o *Market) OrderLots() int64                 { return o.Lots }
func (o *Market) OrderBrokerID() string            { return o.BrokerID }
func (o *Market) Filled() bool                     { return o.Status == MarketFilled }
func (o *Market) FilledOperation() schema.Operation {
	if o.Status != MarketFilled {
		return schema.Operation{}
	}
	return o.Operation
}
