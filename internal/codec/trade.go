package codec

import (
	"github.com/arsvincere/avin-sub002/internal/schema"
	"github.com/arsvincere/avin-sub002/internal/trade"
)

// AppendTrade serializes a trade with its owned orders.
func AppendTrade(dst []byte, t *trade.Trade) []byte {
	dst = AppendInt64(dst, t.StartTs)
	dst = AppendString(dst, t.Strategy)
	dst = AppendUint16(dst, uint16(t.Kind))
	dst = appendIid(dst, t.Iid)
	dst = AppendUint16(dst, uint16(t.Status))
	dst = AppendFloat64(dst, t.Result)
	dst = AppendUint32(dst, uint32(len(t.Orders)))
	for _, o := range t.Orders {
		dst = AppendOrder(dst, o)
	}
	return dst
}

// ScanTrade reconstructs a trade.
func ScanTrade(s *Scanner) (*trade.Trade, bool) {
	t := &trade.Trade{
		StartTs:  s.Int64(),
		Strategy: s.String(),
		Kind:     trade.Kind(s.Uint16()),
		Iid:      scanIid(s),
		Status:   trade.Status(s.Uint16()),
		Result:   s.Float64(),
	}
	count := int(s.Uint32())
	if !s.OK() || count > s.remaining() {
		return nil, false
	}
	for i := 0; i < count; i++ {
		o, ok := ScanOrder(s)
		if !ok {
			return nil, false
		}
		t.Orders = append(t.Orders, o)
	}
	return t, true
}

// EncodeList serializes a named trade list.
func EncodeList(dst []byte, l *trade.List) []byte {
	dst = AppendString(dst, l.Name)
	dst = AppendUint32(dst, uint32(len(l.Trades)))
	for _, t := range l.Trades {
		dst = AppendTrade(dst, t)
	}
	return dst
}

// ScanList reconstructs a trade list from the scanner position.
func ScanList(s *Scanner) (*trade.List, bool) {
	l := &trade.List{Name: s.String()}
	count := int(s.Uint32())
	if !s.OK() || count > s.remaining() {
		return nil, false
	}
	for i := 0; i < count; i++ {
		t, ok := ScanTrade(s)
		if !ok {
			return nil, false
		}
		l.Trades = append(l.Trades, t)
	}
	return l, true
}

// DecodeList parses a trade list payload in full.
func DecodeList(src []byte) (*trade.List, error) {
	s := NewScanner(src)
	l, ok := ScanList(s)
	if !ok || !s.Done() {
		return nil, schema.ErrRead
	}
	return l, nil
}
