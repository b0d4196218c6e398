package schema

import "time"

// Direction describes the side of an order or transaction.
type Direction uint16

const (
	DirectionUnknown Direction = iota
	DirectionBuy
	DirectionSell
)

func (d Direction) String() string {
	switch d {
	case DirectionBuy:
		return "Buy"
	case DirectionSell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// Timeframe is a bar interval expressed in minutes.
type Timeframe uint16

const (
	Timeframe1M  Timeframe = 1
	Timeframe5M  Timeframe = 5
	Timeframe10M Timeframe = 10
	Timeframe1H  Timeframe = 60
	TimeframeDay Timeframe = 1440
)

// Duration returns the timeframe length.
func (tf Timeframe) Duration() time.Duration {
	return time.Duration(tf) * time.Minute
}

func (tf Timeframe) String() string {
	switch tf {
	case Timeframe1M:
		return "1M"
	case Timeframe5M:
		return "5M"
	case Timeframe10M:
		return "10M"
	case Timeframe1H:
		return "1H"
	case TimeframeDay:
		return "D"
	default:
		return "Unknown"
	}
}

// Bar is one candle at base or aggregated resolution.
// Ts is the open time in unix nanoseconds.
type Bar struct {
	Ts     int64
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Contains reports whether price falls inside the bar range.
func (b Bar) Contains(price float64) bool {
	return price >= b.Low && price <= b.High
}

// Join merges a later bar into this one, keeping the open of the receiver.
func (b Bar) Join(other Bar) Bar {
	if other.High > b.High {
		b.High = other.High
	}
	if other.Low < b.Low {
		b.Low = other.Low
	}
	b.Close = other.Close
	b.Volume += other.Volume
	return b
}

// Tic is a single trade print.
type Tic struct {
	Ts        int64
	Direction Direction
	Price     float64
	Lots      int64
}

// BookRow is one price level of an order book.
type BookRow struct {
	Price float64
	Lots  int64
}

// Book is an order book snapshot.
type Book struct {
	Ts   int64
	Bids []BookRow
	Asks []BookRow
}
