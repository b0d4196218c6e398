package trade

import (
	"math"
	"testing"
)

func listWithResults(t *testing.T, results []float64) *List {
	t.Helper()
	list := NewList("unit")
	for i, r := range results {
		tr := New(int64(i), "unit", KindLong, testIid)
		tr.Status = StatusClosed
		tr.Result = r
		list.Add(tr)
	}
	return list
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummary(t *testing.T) {
	s := NewSummary(listWithResults(t, []float64{10, 11, -1}))

	if s.TotalTrades != 3 || s.WinTrades != 2 || s.LossTrades != 1 {
		t.Fatalf("counts mismatch: %+v", s)
	}
	if s.GrossProfit != 21 || s.GrossLoss != -1 || s.NetProfit != 20 {
		t.Fatalf("gross mismatch: %+v", s)
	}
	if !almostEqual(s.ProfitRatio, 21.0) {
		t.Fatalf("profit ratio mismatch: %f", s.ProfitRatio)
	}
	if !almostEqual(s.PercentProfitable, 200.0/3.0) {
		t.Fatalf("percent profitable mismatch: %f", s.PercentProfitable)
	}
	if !almostEqual(s.AverageTrade, 20.0/3.0) {
		t.Fatalf("average trade mismatch: %f", s.AverageTrade)
	}
	if !almostEqual(s.AverageWin, 10.5) || !almostEqual(s.AverageLoss, -1) {
		t.Fatalf("averages mismatch: %+v", s)
	}
	if s.LargestWin != 11 || s.LargestLoss != -1 {
		t.Fatalf("extremes mismatch: %+v", s)
	}
	if s.WinStreak != 2 || s.LossStreak != 1 {
		t.Fatalf("streaks mismatch: %+v", s)
	}
}

func TestSummaryNoLosses(t *testing.T) {
	s := NewSummary(listWithResults(t, []float64{5, 7}))

	if s.ProfitRatio != 100.0 {
		t.Fatalf("profit ratio without losses: %f", s.ProfitRatio)
	}
	if s.PercentProfitable != 100.0 {
		t.Fatalf("percent profitable mismatch: %f", s.PercentProfitable)
	}
	if s.LossStreak != 0 {
		t.Fatalf("loss streak mismatch: %d", s.LossStreak)
	}
}

func TestSummaryZeroResultIsLoss(t *testing.T) {
	s := NewSummary(listWithResults(t, []float64{0}))

	if s.WinTrades != 0 || s.LossTrades != 1 {
		t.Fatalf("zero result counted as win: %+v", s)
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := NewSummary(NewList("unit"))

	if s.TotalTrades != 0 || s.NetProfit != 0 {
		t.Fatalf("empty summary mismatch: %+v", s)
	}
	if s.ProfitRatio != 100.0 {
		t.Fatalf("empty profit ratio mismatch: %f", s.ProfitRatio)
	}
}
