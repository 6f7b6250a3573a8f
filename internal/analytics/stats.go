package analytics

import "tradejournal/internal/domain"

// Stats holds the overall performance numbers shown in the dashboard KPI row.
type Stats struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64 // percentage of trades with pnl > 0
	TotalPnL      float64
	AvgWin        float64 // mean pnl of winning trades, 0 if none
	AvgLoss       float64 // mean absolute pnl of losing trades, 0 if none
	BestTrade     float64
	WorstTrade    float64
	ProfitFactor  float64 // gross wins / gross losses, 0 when no losses
}

// ComputeStats reduces a trade collection to overall performance statistics.
// Like Summarize it is total: an empty collection yields a zero-valued result.
func ComputeStats(trades []*domain.Trade) *Stats {
	s := &Stats{}
	if len(trades) == 0 {
		return s
	}

	var grossWins, grossLosses float64
	for i, t := range trades {
		pnl := t.NetPNL()
		s.TotalTrades++
		s.TotalPnL += pnl
		if pnl > 0 {
			s.WinningTrades++
			grossWins += pnl
		} else if pnl < 0 {
			s.LosingTrades++
			grossLosses += -pnl
		}
		if i == 0 || pnl > s.BestTrade {
			s.BestTrade = pnl
		}
		if i == 0 || pnl < s.WorstTrade {
			s.WorstTrade = pnl
		}
	}

	s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	if s.WinningTrades > 0 {
		s.AvgWin = grossWins / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AvgLoss = grossLosses / float64(s.LosingTrades)
	}
	if grossLosses > 0 {
		s.ProfitFactor = grossWins / grossLosses
	}
	return s
}
