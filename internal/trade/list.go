package trade

// List is a named, append-only trade history. Trades are appended in
// closing order during a run.
type List struct {
	Name   string
	Trades []*Trade
}

// NewList creates an empty named list.
func NewList(name string) *List {
	return &List{Name: name}
}

// Add appends a trade.
func (l *List) Add(t *Trade) {
	l.Trades = append(l.Trades, t)
}

// Clear drops all trades, keeping the name.
func (l *List) Clear() {
	l.Trades = l.Trades[:0]
}

// Len returns the number of trades.
func (l *List) Len() int {
	return len(l.Trades)
}

// Results returns the closed trades' results in list order.
func (l *List) Results() []float64 {
	results := make([]float64, 0, len(l.Trades))
	for _, t := range l.Trades {
		if t.Status != StatusClosed {
			continue
		}
		results = append(results, t.Result)
	}
	return results
}
