package insight

import (
	"fmt"
	"sort"

	"tradejournal/internal/domain"
)

// sessionSentiment keys the loss-correlation grouping. Only trades carrying
// both fields participate.
type sessionSentiment struct {
	session   domain.Session
	sentiment domain.Sentiment
}

// lossComboRule looks for a session+sentiment pair that concentrates losses.
// The worst pair must hold at least comboMinCount losing trades and account
// for at least comboLossShare of all losing trades.
func lossComboRule(trades []*domain.Trade) (Insight, bool) {
	totalLosses := 0
	counts := make(map[sessionSentiment]int)
	var worst sessionSentiment
	worstCount := 0

	for _, t := range trades {
		if t.NetPNL() >= 0 {
			continue
		}
		totalLosses++
		if !t.HasSession() || !t.HasSentiment() {
			continue
		}
		key := sessionSentiment{t.Session, t.Sentiment}
		counts[key]++
		// Single ordered pass with a strict ">": the first pair to reach a
		// given count wins ties, independent of map iteration order.
		if counts[key] >= comboMinCount && counts[key] > worstCount {
			worst = key
			worstCount = counts[key]
		}
	}

	if worstCount == 0 || float64(worstCount) < comboLossShare*float64(totalLosses) {
		return Insight{}, false
	}
	return Insight{
		Message: fmt.Sprintf(
			"%d of your %d losing trades happened in the %s session while feeling %s. Consider pausing next time that mood shows up there.",
			worstCount, totalLosses, worst.session.Label(), worst.sentiment.Label()),
		Severity: SeverityWarning,
		Icon:     "pause-circle",
	}, true
}

// disciplineTrendRule compares plan compliance over the most recent trades
// (by timestamp, not collection position) against the overall rate.
func disciplineTrendRule(trades []*domain.Trade) (Insight, bool) {
	recent := mostRecent(trades, recentWindow)
	recentRate := complianceRate(recent)
	overallRate := complianceRate(trades)

	if overallRate-recentRate > disciplineDropPoints {
		return Insight{
			Message: fmt.Sprintf(
				"Your discipline is slipping: %.0f%% plan compliance over your last %d trades versus %.0f%% overall.",
				recentRate, len(recent), overallRate),
			Severity: SeverityWarning,
			Icon:     "trending-down",
		}, true
	}
	if recentRate >= strongDisciplineRate && len(recent) >= minRecentForPraise {
		return Insight{
			Message: fmt.Sprintf(
				"Strong discipline: %.0f%% plan compliance over your last %d trades. Keep it up.",
				recentRate, len(recent)),
			Severity: SeveritySuccess,
			Icon:     "shield-check",
		}, true
	}
	return Insight{}, false
}

// bestSessionRule praises the session with the highest summed PnL, when that
// sum is positive and the session holds enough trades to mean anything.
func bestSessionRule(trades []*domain.Trade) (Insight, bool) {
	type acc struct {
		count int
		wins  int
		pnl   float64
	}
	groups := make(map[domain.Session]*acc)
	var order []domain.Session
	for _, t := range trades {
		if !t.HasSession() {
			continue
		}
		g, ok := groups[t.Session]
		if !ok {
			g = &acc{}
			groups[t.Session] = g
			order = append(order, t.Session)
		}
		g.count++
		if t.NetPNL() > 0 {
			g.wins++
		}
		g.pnl += t.NetPNL()
	}

	var best domain.Session
	found := false
	for _, s := range order { // first-seen order, not map order
		g := groups[s]
		if g.count < bestSessionMinTrades {
			continue
		}
		if !found || g.pnl > groups[best].pnl {
			best = s
			found = true
		}
	}
	if !found || groups[best].pnl <= 0 {
		return Insight{}, false
	}
	g := groups[best]
	return Insight{
		Message: fmt.Sprintf(
			"%s is your best session: %.0f%% winrate and %+.2f$ over %d trades.",
			best.Label(), float64(g.wins)/float64(g.count)*100, g.pnl, g.count),
		Severity: SeveritySuccess,
		Icon:     "trending-up",
	}, true
}

// worstSentimentRule warns about the sentiment with the lowest summed PnL,
// when that sum is negative.
func worstSentimentRule(trades []*domain.Trade) (Insight, bool) {
	type acc struct {
		count int
		pnl   float64
	}
	groups := make(map[domain.Sentiment]*acc)
	var order []domain.Sentiment
	for _, t := range trades {
		if !t.HasSentiment() {
			continue
		}
		g, ok := groups[t.Sentiment]
		if !ok {
			g = &acc{}
			groups[t.Sentiment] = g
			order = append(order, t.Sentiment)
		}
		g.count++
		g.pnl += t.NetPNL()
	}

	var worst domain.Sentiment
	found := false
	for _, s := range order {
		g := groups[s]
		if g.count < worstSentimentMinTrades {
			continue
		}
		if !found || g.pnl < groups[worst].pnl {
			worst = s
			found = true
		}
	}
	if !found || groups[worst].pnl >= 0 {
		return Insight{}, false
	}
	g := groups[worst]
	return Insight{
		Message: fmt.Sprintf(
			"Trading while %s costs you %.2f$ per trade on average. Flag that mood before you click.",
			worst.Label(), -g.pnl/float64(g.count)),
		Severity: SeverityWarning,
		Icon:     "alert-triangle",
	}, true
}

// fomoRule flags FOMO entries once they lose more often than fomoLossShare.
func fomoRule(trades []*domain.Trade) (Insight, bool) {
	count, losses := 0, 0
	for _, t := range trades {
		if t.Sentiment != domain.SentimentFOMO {
			continue
		}
		count++
		if t.NetPNL() < 0 {
			losses++
		}
	}
	if count < fomoMinTrades || float64(losses) <= fomoLossShare*float64(count) {
		return Insight{}, false
	}
	return Insight{
		Message: fmt.Sprintf(
			"%d of your %d FOMO trades are losers. FOMO entries are bleeding your account; step away when you feel the chase.",
			losses, count),
		Severity: SeverityDanger,
		Icon:     "flame",
	}, true
}

// mostRecent returns up to n trades ordered newest-first by timestamp,
// without mutating the input collection.
func mostRecent(trades []*domain.Trade, n int) []*domain.Trade {
	sorted := make([]*domain.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// complianceRate returns the percentage of trades marked conforme, 0 for an
// empty collection.
func complianceRate(trades []*domain.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	compliant := 0
	for _, t := range trades {
		if t.Conforme {
			compliant++
		}
	}
	return float64(compliant) / float64(len(trades)) * 100
}
