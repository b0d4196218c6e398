package tester

import (
	"fmt"
	"path/filepath"

	"github.com/arsvincere/avin-sub002/internal/codec"
	"github.com/arsvincere/avin-sub002/internal/schema"
	"github.com/arsvincere/avin-sub002/internal/store"
	"github.com/arsvincere/avin-sub002/internal/trade"
)

var testMagic = [4]byte{'A', 'V', 'T', 'S'}

// Status tracks where a test sits in its edit/run cycle.
type Status uint16

const (
	StatusNew Status = iota
	StatusEdit
	StatusProcess
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusEdit:
		return "Edit"
	case StatusProcess:
		return "Process"
	case StatusComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Test is one backtest configuration together with its result: a
// strategy name, an instrument, the run parameters and the trade list
// produced by the last completed run.
type Test struct {
	StrategyName string
	Iid          schema.Iid
	Deposit      float64
	Commission   float64
	BeginTs      int64
	EndTs        int64

	Status    Status
	TradeList *trade.List
}

// New creates a test in the New state with an empty trade list.
func New(strategyName string, iid schema.Iid) *Test {
	return &Test{
		StrategyName: strategyName,
		Iid:          iid,
		Status:       StatusNew,
		TradeList:    trade.NewList(fmt.Sprintf("%s-%s", strategyName, iid.Ticker)),
	}
}

// Path returns the canonical file location under a storage root:
// <root>/test/<strategy>/<ticker>.tst.
func (t *Test) Path(root string) string {
	return filepath.Join(root, "test", t.StrategyName, t.Iid.Ticker+".tst")
}

// Save persists the test, trade list included, under its canonical path.
func (t *Test) Save(root string) error {
	var payload []byte
	payload = codec.AppendString(payload, t.StrategyName)
	payload = codec.AppendString(payload, t.Iid.Exchange)
	payload = codec.AppendString(payload, t.Iid.Ticker)
	payload = codec.AppendFloat64(payload, t.Deposit)
	payload = codec.AppendFloat64(payload, t.Commission)
	payload = codec.AppendInt64(payload, t.BeginTs)
	payload = codec.AppendInt64(payload, t.EndTs)
	payload = codec.AppendUint16(payload, uint16(t.Status))
	payload = codec.EncodeList(payload, t.TradeList)
	return store.SaveBlob(t.Path(root), testMagic, payload)
}

// Load restores a test from a file written by Save.
func Load(path string) (*Test, error) {
	payload, err := store.LoadBlob(path, testMagic)
	if err != nil {
		return nil, err
	}
	s := codec.NewScanner(payload)
	t := &Test{
		StrategyName: s.String(),
		Iid: schema.Iid{
			Exchange: s.String(),
			Ticker:   s.String(),
		},
		Deposit:    s.Float64(),
		Commission: s.Float64(),
		BeginTs:    s.Int64(),
		EndTs:      s.Int64(),
		Status:     Status(s.Uint16()),
	}
	list, ok := codec.ScanList(s)
	if !ok || !s.Done() {
		return nil, fmt.Errorf("%w: test %s", schema.ErrRead, path)
	}
	t.TradeList = list
	return t, nil
}
