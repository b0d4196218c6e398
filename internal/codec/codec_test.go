package codec

import (
	"reflect"
	"testing"

	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/schema"
	"github.com/arsvincere/avin-sub002/internal/trade"
)

var (
	testAccount = schema.Account{Name: "unit", BrokerID: "sim"}
	testIid     = schema.Iid{Exchange: "MOEX", Ticker: "SBER"}
)

func TestBarRoundTrip(t *testing.T) {
	bar := schema.Bar{Ts: 123456789, Open: 100.5, High: 101.25, Low: 99.75, Close: 100.0, Volume: 4200}

	payload := EncodeBar(nil, bar)
	if len(payload) != BarPayloadSize {
		t.Fatalf("payload size mismatch: %d", len(payload))
	}

	decoded, ok := DecodeBar(payload)
	if !ok {
		t.Fatalf("decode failed")
	}
	if decoded != bar {
		t.Fatalf("round trip mismatch: %+v != %+v", decoded, bar)
	}
}

func TestDecodeBarShort(t *testing.T) {
	if _, ok := DecodeBar(make([]byte, BarPayloadSize-1)); ok {
		t.Fatalf("expected decode failure on short payload")
	}
}

func TestListRoundTrip(t *testing.T) {
	market := order.NewMarket(testAccount, testIid, schema.DirectionBuy, 10)
	if err := market.Post("b-1"); err != nil {
		t.Fatalf("post failed: %+v", err)
	}
	if err := market.AddTransaction(schema.Transaction{Quantity: 10, Price: 301.0}); err != nil {
		t.Fatalf("add transaction failed: %+v", err)
	}
	if err := market.Fill(7, 3.0); err != nil {
		t.Fatalf("fill failed: %+v", err)
	}

	limit := order.NewLimit(testAccount, testIid, schema.DirectionSell, 10, 311.0)
	if err := limit.Post("b-2"); err != nil {
		t.Fatalf("post failed: %+v", err)
	}
	if err := limit.AddTransaction(schema.Transaction{Quantity: 10, Price: 311.0}); err != nil {
		t.Fatalf("add transaction failed: %+v", err)
	}
	if err := limit.Fill(9, 3.1); err != nil {
		t.Fatalf("fill failed: %+v", err)
	}

	stop := order.NewStop(testAccount, testIid, schema.DirectionSell, 10, 290.0, 289.0)
	if err := stop.Post("b-3"); err != nil {
		t.Fatalf("post failed: %+v", err)
	}

	tr := trade.New(7, "unit", trade.KindLong, testIid)
	if err := tr.Open(market); err != nil {
		t.Fatalf("open failed: %+v", err)
	}
	if err := tr.AddOrder(limit); err != nil {
		t.Fatalf("add order failed: %+v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("close failed: %+v", err)
	}

	holding := trade.New(8, "unit", trade.KindShort, testIid)

	list := trade.NewList("unit-list")
	list.Add(tr)
	list.Add(holding)

	// A pending stop rides along attached to an opened trade.
	second := trade.New(9, "unit", trade.KindLong, testIid)
	open2 := order.NewMarket(testAccount, testIid, schema.DirectionBuy, 10)
	if err := open2.Post("b-4"); err != nil {
		t.Fatalf("post failed: %+v", err)
	}
	if err := open2.AddTransaction(schema.Transaction{Quantity: 10, Price: 300.0}); err != nil {
		t.Fatalf("add transaction failed: %+v", err)
	}
	if err := open2.Fill(9, 3.0); err != nil {
		t.Fatalf("fill failed: %+v", err)
	}
	if err := second.Open(open2); err != nil {
		t.Fatalf("open failed: %+v", err)
	}
	second.Orders = append(second.Orders, stop)
	list.Add(second)

	payload := EncodeList(nil, list)
	decoded, err := DecodeList(payload)
	if err != nil {
		t.Fatalf("decode failed: %+v", err)
	}
	if !reflect.DeepEqual(decoded, list) {
		t.Fatalf("round trip mismatch:\n got: %+v\nwant: %+v", decoded, list)
	}
}

func TestDecodeListTrailingBytes(t *testing.T) {
	payload := EncodeList(nil, trade.NewList("unit"))
	payload = append(payload, 0xFF)

	if _, err := DecodeList(payload); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestDecodeListTruncated(t *testing.T) {
	list := trade.NewList("unit")
	list.Add(trade.New(1, "unit", trade.KindLong, testIid))
	payload := EncodeList(nil, list)

	if _, err := DecodeList(payload[:len(payload)-3]); err == nil {
		t.Fatalf("expected error on truncated payload")
	}
}

func TestScanTransactionsRejectsOversizedCount(t *testing.T) {
	// A count claiming far more transactions than the payload holds must
	// fail before any allocation sized from it.
	payload := AppendUint32(nil, 1<<30)
	payload = append(payload, make([]byte, transactionSize)...)

	s := NewScanner(payload)
	if got := scanTransactions(s); got != nil {
		t.Fatalf("expected nil, got %d transactions", len(got))
	}
	if s.OK() {
		t.Fatalf("expected latched failure")
	}
}

func TestDecodeListRejectsOversizedCount(t *testing.T) {
	payload := AppendString(nil, "unit")
	payload = AppendUint32(payload, 1<<30)

	if _, err := DecodeList(payload); err == nil {
		t.Fatalf("expected error on oversized trade count")
	}
}

func TestScannerLatchesFailure(t *testing.T) {
	s := NewScanner([]byte{0x01})

	if v := s.Uint32(); v != 0 {
		t.Fatalf("short read returned %d", v)
	}
	if s.OK() {
		t.Fatalf("expected latched failure")
	}
	if v := s.Uint16(); v != 0 {
		t.Fatalf("read after failure returned %d", v)
	}
}
