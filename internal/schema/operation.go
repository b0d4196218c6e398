package schema

// Transaction is one executed fill: signed quantity at a price.
// It is a value object owned by the order that produced it.
type Transaction struct {
	Quantity int64
	Price    float64
}

// Operation is the net financial result of one order's accumulated fills.
// It is created exactly once, when the order becomes filled.
type Operation struct {
	Timestamp  int64
	Quantity   int64
	Value      float64
	Commission float64
}

// NewOperation reduces a transaction list into one operation.
// An empty transaction list is a caller bug, not a runtime condition.
func NewOperation(ts int64, transactions []Transaction, commission float64) Operation {
	if len(transactions) == 0 {
		panic("schema: operation from empty transaction list")
	}
	var quantity int64
	var value float64
	for _, t := range transactions {
		quantity += t.Quantity
		value += float64(t.Quantity) * t.Price
	}
	return Operation{
		Timestamp:  ts,
		Quantity:   quantity,
		Value:      value,
		Commission: commission,
	}
}
