// Package demo produces the synthetic demonstration dataset the dashboard
// falls back to when the journal cannot be fetched. The data is clearly
// flagged by the caller; the analytics engines are agnostic to its origin.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"tradejournal/internal/domain"
)

// DefaultTrades is how many synthetic trades a demo journal holds.
const DefaultTrades = 40

var setups = []string{"Breakout", "Pullback", "Reversal", "Scalp", "Swing"}

var sessions = []domain.Session{
	domain.SessionLondon,
	domain.SessionNewYork,
	domain.SessionAsia,
}

var sentiments = []domain.Sentiment{
	domain.SentimentCalm,
	domain.SentimentStressed,
	domain.SentimentAngry,
	domain.SentimentFOMO,
}

// GenerateTrades builds n synthetic trades ending near now, deterministic for
// a given seed. Compliant trades skew profitable, noncompliant ones skew
// losing, and roughly one trade in ten omits its optional fields so the
// missing-field paths stay exercised.
func GenerateTrades(n int, seed int64, now time.Time) []*domain.Trade {
	rng := rand.New(rand.NewSource(seed))
	trades := make([]*domain.Trade, 0, n)

	// Start far enough back that day-ish spacing keeps every trade before
	// now; steps stay under 48h so n*2 days always suffices.
	ts := now.AddDate(0, 0, -n*2)

	for i := 0; i < n; i++ {
		conforme := rng.Float64() > 0.3
		var pnl float64
		if conforme {
			pnl = rng.Float64()*500 - 100
		} else {
			pnl = rng.Float64()*400 - 300
		}
		t := &domain.Trade{
			ID:        fmt.Sprintf("demo-%d", i+1),
			Timestamp: ts,
			PNL:       float64(int(pnl*100)) / 100,
			Conforme:  conforme,
		}
		if rng.Float64() > 0.1 {
			t.Setup = setups[rng.Intn(len(setups))]
			t.Session = sessions[rng.Intn(len(sessions))]
			t.Sentiment = sentiments[rng.Intn(len(sentiments))]
		}
		trades = append(trades, t)
		ts = ts.Add(time.Duration(24+rng.Intn(24)) * time.Hour)
	}
	return trades
}
