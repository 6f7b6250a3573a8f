package insight

import (
	"testing"
	"time"

	"tradejournal/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// mkTrades builds a chronological collection where trade i happened i days
// after testBase.
func mkTrades(n int, fn func(i int, t *domain.Trade)) []*domain.Trade {
	trades := make([]*domain.Trade, n)
	for i := range trades {
		tr := &domain.Trade{
			Timestamp: testBase.AddDate(0, 0, i),
			Conforme:  true,
		}
		fn(i, tr)
		trades[i] = tr
	}
	return trades
}

func TestGenerate_BootstrappingBelowMinimum(t *testing.T) {
	g := NewGenerator()
	for _, n := range []int{0, 1, 2} {
		trades := mkTrades(n, func(i int, tr *domain.Trade) { tr.PNL = 100 })
		got := g.Generate(trades)
		assert.Equal(t, SeverityInfo, got.Severity)
		assert.Equal(t, "sparkles", got.Icon)
	}
}

func TestGenerate_AllCompliantEarnsDisciplinePraise(t *testing.T) {
	// 12 compliant trades with no session or sentiment recorded: every
	// grouping rule abstains on missing fields, but the 100% recent
	// compliance rate clears the praise bar.
	trades := mkTrades(12, func(i int, tr *domain.Trade) { tr.PNL = 10 })
	got := NewGenerator().Generate(trades)
	assert.Equal(t, SeveritySuccess, got.Severity)
	assert.Equal(t, "shield-check", got.Icon)
}

func TestGenerate_FOMODangerBeatsConcurrentSuccess(t *testing.T) {
	// 5 FOMO trades, 4 losing: 80% loss share fires the danger rule. The
	// trades are all compliant so the discipline rule fires success at the
	// same time; danger must still win.
	trades := mkTrades(5, func(i int, tr *domain.Trade) {
		tr.Sentiment = domain.SentimentFOMO
		if i == 0 {
			tr.PNL = 5
		} else {
			tr.PNL = -10
		}
	})
	got := NewGenerator().Generate(trades)
	assert.Equal(t, SeverityDanger, got.Severity)
	assert.Equal(t, "flame", got.Icon)
}

func TestGenerate_FallbackWhenEveryRuleAbstains(t *testing.T) {
	// 4 trades, half compliant, no session or sentiment: no drop (recent
	// window equals the whole collection), rate below the praise bar.
	trades := mkTrades(4, func(i int, tr *domain.Trade) {
		tr.Conforme = i%2 == 0
		tr.PNL = -1
	})
	got := NewGenerator().Generate(trades)
	assert.Equal(t, SeverityInfo, got.Severity)
	assert.Equal(t, "book-open", got.Icon)
}

func TestGenerate_EarliestRuleWinsSeverityTie(t *testing.T) {
	// Both the loss-combo rule and the worst-sentiment rule fire warnings;
	// the loss-combo rule sits earlier in the battery and must be kept.
	trades := mkTrades(3, func(i int, tr *domain.Trade) {
		tr.Conforme = false
		tr.PNL = -20
		tr.Session = domain.SessionLondon
		tr.Sentiment = domain.SentimentAngry
	})
	got := NewGenerator().Generate(trades)
	assert.Equal(t, SeverityWarning, got.Severity)
	assert.Equal(t, "pause-circle", got.Icon)
}
