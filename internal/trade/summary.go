package trade

// Summary is a deterministic reduction over closed trades' results.
// Streaks walk results in trade-closing order; everything else is
// order-independent.
type Summary struct {
	TotalTrades int
	WinTrades   int
	LossTrades  int

	GrossProfit float64
	GrossLoss   float64
	NetProfit   float64

	// ProfitRatio is gross profit over |gross loss|, 100 when there is
	// no loss.
	ProfitRatio       float64
	PercentProfitable float64

	AverageTrade float64
	AverageWin   float64
	AverageLoss  float64
	LargestWin   float64
	LargestLoss  float64

	WinStreak  int
	LossStreak int
}

// NewSummary computes statistics over the list's closed trades.
func NewSummary(list *List) Summary {
	var s Summary
	var winStreak, lossStreak int

	for _, result := range list.Results() {
		s.TotalTrades++
		s.NetProfit += result

		if result > 0 {
			s.WinTrades++
			s.GrossProfit += result
			if result > s.LargestWin {
				s.LargestWin = result
			}
			winStreak++
			lossStreak = 0
			if winStreak > s.WinStreak {
				s.WinStreak = winStreak
			}
		} else {
			s.LossTrades++
			s.GrossLoss += result
			if result < s.LargestLoss {
				s.LargestLoss = result
			}
			lossStreak++
			winStreak = 0
			if lossStreak > s.LossStreak {
				s.LossStreak = lossStreak
			}
		}
	}

	if s.GrossLoss == 0 {
		s.ProfitRatio = 100.0
	} else {
		s.ProfitRatio = s.GrossProfit / -s.GrossLoss
	}
	if s.TotalTrades > 0 {
		s.PercentProfitable = float64(s.WinTrades) / float64(s.TotalTrades) * 100
		s.AverageTrade = s.NetProfit / float64(s.TotalTrades)
	}
	if s.WinTrades > 0 {
		s.AverageWin = s.GrossProfit / float64(s.WinTrades)
	}
	if s.LossTrades > 0 {
		s.AverageLoss = s.GrossLoss / float64(s.LossTrades)
	}
	return s
}
