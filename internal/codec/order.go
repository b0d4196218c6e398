package codec

import (
	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

// AppendOrder serializes any order variant behind a kind tag.
func AppendOrder(dst []byte, o order.Order) []byte {
	dst = AppendUint16(dst, uint16(o.OrderKind()))
	switch v := o.(type) {
	case *order.Market:
		return appendMarket(dst, v)
	case *order.Limit:
		return appendLimit(dst, v)
	case *order.Stop:
		return appendStop(dst, v)
	default:
		panic("codec: unknown order variant")
	}
}

// ScanOrder reconstructs an order variant from its kind tag.
func ScanOrder(s *Scanner) (order.Order, bool) {
	kind := order.Kind(s.Uint16())
	switch kind {
	case order.KindMarket:
		return scanMarket(s)
	case order.KindLimit:
		return scanLimit(s)
	case order.KindStop:
		return scanStop(s)
	default:
		return nil, false
	}
}

func appendAccount(dst []byte, a schema.Account) []byte {
	dst = AppendString(dst, a.Name)
	return AppendString(dst, a.BrokerID)
}

func scanAccount(s *Scanner) schema.Account {
	return schema.Account{Name: s.String(), BrokerID: s.String()}
}

func appendIid(dst []byte, iid schema.Iid) []byte {
	dst = AppendString(dst, iid.Exchange)
	return AppendString(dst, iid.Ticker)
}

func scanIid(s *Scanner) schema.Iid {
	return schema.Iid{Exchange: s.String(), Ticker: s.String()}
}

func appendTransactions(dst []byte, transactions []schema.Transaction) []byte {
	dst = AppendUint32(dst, uint32(len(transactions)))
	for _, t := range transactions {
		dst = AppendInt64(dst, t.Quantity)
		dst = AppendFloat64(dst, t.Price)
	}
	return dst
}

// transactionSize is the encoded size of one transaction.
const transactionSize = 16

func scanTransactions(s *Scanner) []schema.Transaction {
	count := int(s.Uint32())
	if count == 0 || !s.OK() {
		return nil
	}
	if count > s.remaining()/transactionSize {
		s.fail()
		return nil
	}
	transactions := make([]schema.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, schema.Transaction{
			Quantity: s.Int64(),
			Price:    s.Float64(),
		})
	}
	return transactions
}

func appendOperation(dst []byte, op schema.Operation) []byte {
	dst = AppendInt64(dst, op.Timestamp)
	dst = AppendInt64(dst, op.Quantity)
	dst = AppendFloat64(dst, op.Value)
	return AppendFloat64(dst, op.Commission)
}

func scanOperation(s *Scanner) schema.Operation {
	return schema.Operation{
		Timestamp:  s.Int64(),
		Quantity:   s.Int64(),
		Value:      s.Float64(),
		Commission: s.Float64(),
	}
}

func appendMarket(dst []byte, o *order.Market) []byte {
	dst = appendAccount(dst, o.Account)
	dst = appendIid(dst, o.Iid)
	dst = AppendUint16(dst, uint16(o.Direction))
	dst = AppendInt64(dst, o.Lots)
	dst = AppendUint16(dst, uint16(o.Status))
	dst = AppendString(dst, o.BrokerID)
	dst = appendTransactions(dst, o.Transactions)
	dst = appendOperation(dst, o.Operation)
	return AppendString(dst, o.Reason)
}

func scanMarket(s *Scanner) (*order.Market, bool) {
	o := &order.Market{
		Account:   scanAccount(s),
		Iid:       scanIid(s),
		Direction: schema.Direction(s.Uint16()),
	}
	o.Lots = s.Int64()
	o.Status = order.MarketStatus(s.Uint16())
	o.BrokerID = s.String()
	o.Transactions = scanTransactions(s)
	o.Operation = scanOperation(s)
	o.Reason = s.String()
	if !s.OK() {
		return nil, false
	}
	return o, true
}

func appendLimit(dst []byte, o *order.Limit) []byte {
	dst = appendAccount(dst, o.Account)
	dst = appendIid(dst, o.Iid)
	dst = AppendUint16(dst, uint16(o.Direction))
	dst = AppendInt64(dst, o.Lots)
	dst = AppendFloat64(dst, o.Price)
	dst = AppendUint16(dst, uint16(o.Status))
	dst = AppendString(dst, o.BrokerID)
	dst = appendTransactions(dst, o.Transactions)
	dst = appendOperation(dst, o.Operation)
	return AppendString(dst, o.Reason)
}

func scanLimit(s *Scanner) (*order.Limit, bool) {
	o := &order.Limit{
		Account:   scanAccount(s),
		Iid:       scanIid(s),
		Direction: schema.Direction(s.Uint16()),
	}
	o.Lots = s.Int64()
	o.Price = s.Float64()
	o.Status = order.LimitStatus(s.Uint16())
	o.BrokerID = s.String()
	o.Transactions = scanTransactions(s)
	o.Operation = scanOperation(s)
	o.Reason = s.String()
	if !s.OK() {
		return nil, false
	}
	return o, true
}

func appendStop(dst []byte, o *order.Stop) []byte {
	dst = appendAccount(dst, o.Account)
	dst = appendIid(dst, o.Iid)
	dst = AppendUint16(dst, uint16(o.Direction))
	dst = AppendInt64(dst, o.Lots)
	dst = AppendFloat64(dst, o.StopPrice)
	dst = AppendFloat64(dst, o.ExecPrice)
	dst = AppendUint16(dst, uint16(o.Status))
	dst = AppendString(dst, o.BrokerID)
	return AppendString(dst, o.Reason)
}

func scanStop(s *Scanner) (*order.Stop, bool) {
	o := &order.Stop{
		Account:   scanAccount(s),
		Iid:       scanIid(s),
		Direction: schema.Direction(s.Uint16()),
	}
	o.Lots = s.Int64()
	o.StopPrice = s.Float64()
	o.ExecPrice = s.Float64()
	o.Status = order.StopStatus(s.Uint16())
	o.BrokerID = s.String()
	o.Reason = s.String()
	if !s.OK() {
		return nil, false
	}
	return o, true
}
