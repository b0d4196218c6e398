package risk

import (
	"testing"

	"github.com/arsvincere/avin-sub002/internal/order"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

var (
	testAccount = schema.Account{Name: "unit", BrokerID: "sim"}
	testIid     = schema.Iid{Exchange: "MOEX", Ticker: "SBER"}
)

func TestKillSwitch(t *testing.T) {
	e := NewEngine(Config{KillSwitch: true})
	o := order.NewMarket(testAccount, testIid, schema.DirectionBuy, 1)

	if reason := e.Evaluate(o); reason != ReasonKillSwitch {
		t.Fatalf("reason mismatch: %s", reason)
	}
}

func TestMaxOrderLots(t *testing.T) {
	e := NewEngine(Config{MaxOrderLots: 10})

	ok := order.NewMarket(testAccount, testIid, schema.DirectionBuy, 10)
	if reason := e.Evaluate(ok); reason != ReasonNone {
		t.Fatalf("reason mismatch: %s", reason)
	}

	big := order.NewMarket(testAccount, testIid, schema.DirectionBuy, 11)
	if reason := e.Evaluate(big); reason != ReasonMaxLots {
		t.Fatalf("reason mismatch: %s", reason)
	}
}

func TestMaxOrderValue(t *testing.T) {
	e := NewEngine(Config{MaxOrderValue: 1000})

	ok := order.NewLimit(testAccount, testIid, schema.DirectionBuy, 10, 100.0)
	if reason := e.Evaluate(ok); reason != ReasonNone {
		t.Fatalf("reason mismatch: %s", reason)
	}

	big := order.NewLimit(testAccount, testIid, schema.DirectionBuy, 10, 100.5)
	if reason := e.Evaluate(big); reason != ReasonMaxValue {
		t.Fatalf("reason mismatch: %s", reason)
	}

	// Market orders carry no price; the value check does not apply.
	market := order.NewMarket(testAccount, testIid, schema.DirectionBuy, 1000)
	if reason := e.Evaluate(market); reason != ReasonNone {
		t.Fatalf("reason mismatch: %s", reason)
	}
}

func TestPositionLimit(t *testing.T) {
	e := NewEngine(Config{MaxPosition: 10})

	buy := order.NewMarket(testAccount, testIid, schema.DirectionBuy, 8)
	if err := buy.Post("b-1"); err != nil {
		t.Fatalf("post failed: %+v", err)
	}
	if err := buy.AddTransaction(schema.Transaction{Quantity: 8, Price: 100}); err != nil {
		t.Fatalf("add transaction failed: %+v", err)
	}
	if err := buy.Fill(1, 0); err != nil {
		t.Fatalf("fill failed: %+v", err)
	}
	e.Observe(buy)
	if e.Position() != 8 {
		t.Fatalf("position mismatch: %d", e.Position())
	}

	over := order.NewMarket(testAccount, testIid, schema.DirectionBuy, 3)
	if reason := e.Evaluate(over); reason != ReasonPositionLimit {
		t.Fatalf("reason mismatch: %s", reason)
	}

	// Selling reduces exposure and passes.
	sell := order.NewMarket(testAccount, testIid, schema.DirectionSell, 3)
	if reason := e.Evaluate(sell); reason != ReasonNone {
		t.Fatalf("reason mismatch: %s", reason)
	}
}

func TestObserveIgnoresUnfilled(t *testing.T) {
	e := NewEngine(Config{})
	e.Observe(order.NewMarket(testAccount, testIid, schema.DirectionBuy, 5))
	if e.Position() != 0 {
		t.Fatalf("position mismatch: %d", e.Position())
	}
}
