package analytics

import "tradejournal/internal/domain"

// Summary holds the discipline metrics computed from a trade collection.
// It is the backing data for the dashboard's "zones de vérité".
type Summary struct {
	DisciplineScore float64 // percentage of trades marked compliant, in [0,100]
	TotalTrades     int

	Compliant    []*domain.Trade
	NonCompliant []*domain.Trade

	CompliantWinRate    float64 // percentage of compliant trades with pnl > 0
	NonCompliantWinRate float64
	CompliantPnL        float64
	NonCompliantPnL     float64

	// IndisciplineCost is the PnL summed over noncompliant trades only.
	// A negative value represents money lost to plan deviation.
	IndisciplineCost float64

	// PriorityError is the setup most often failed among noncompliant trades
	// ("Unknown" when the setup was not recorded). Empty when there are no
	// noncompliant trades.
	PriorityError      string
	PriorityErrorCount int
}

// Summarize reduces a trade collection to a discipline summary.
// Total over its input: an empty collection yields a zero-valued summary and
// malformed pnl values are treated as 0 rather than propagated into aggregates.
// The input is never mutated.
func Summarize(trades []*domain.Trade) *Summary {
	s := &Summary{
		Compliant:    make([]*domain.Trade, 0),
		NonCompliant: make([]*domain.Trade, 0),
	}
	if len(trades) == 0 {
		return s
	}

	s.TotalTrades = len(trades)
	for _, t := range trades {
		if t.Conforme {
			s.Compliant = append(s.Compliant, t)
			s.CompliantPnL += t.NetPNL()
		} else {
			s.NonCompliant = append(s.NonCompliant, t)
			s.NonCompliantPnL += t.NetPNL()
		}
	}
	s.DisciplineScore = float64(len(s.Compliant)) / float64(s.TotalTrades) * 100
	s.CompliantWinRate = winRate(s.Compliant)
	s.NonCompliantWinRate = winRate(s.NonCompliant)
	s.IndisciplineCost = s.NonCompliantPnL

	// Priority error: the setup most often failed. A single ordered pass over
	// the noncompliant trades with a strict ">" keeps the first-seen setup on
	// ties, independent of map iteration order.
	failCounts := make(map[string]int)
	for _, t := range s.NonCompliant {
		setup := t.Setup
		if setup == "" {
			setup = domain.SetupUnknown
		}
		failCounts[setup]++
		if failCounts[setup] > s.PriorityErrorCount {
			s.PriorityError = setup
			s.PriorityErrorCount = failCounts[setup]
		}
	}

	return s
}

// winRate returns the percentage of trades with pnl > 0, 0 for an empty subset.
func winRate(trades []*domain.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.NetPNL() > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(trades)) * 100
}
