package analytics

import (
	"testing"

	"tradejournal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name string
		in   []*domain.Trade
		want Stats
	}{
		{
			name: "empty collection yields zero stats",
			in:   nil,
			want: Stats{},
		},
		{
			name: "wins and losses",
			in: []*domain.Trade{
				{PNL: 100},
				{PNL: -50},
				{PNL: 200},
				{PNL: -25},
			},
			want: Stats{
				TotalTrades:   4,
				WinningTrades: 2,
				LosingTrades:  2,
				WinRate:       50,
				TotalPnL:      225,
				AvgWin:        150,
				AvgLoss:       37.5,
				BestTrade:     200,
				WorstTrade:    -50,
				ProfitFactor:  4,
			},
		},
		{
			name: "flat trades count toward neither side",
			in: []*domain.Trade{
				{PNL: 0},
				{PNL: 10},
			},
			want: Stats{
				TotalTrades:   2,
				WinningTrades: 1,
				WinRate:       50,
				TotalPnL:      10,
				AvgWin:        10,
				BestTrade:     10,
				WorstTrade:    0,
			},
		},
		{
			name: "all losing keeps profit factor at zero numerator",
			in: []*domain.Trade{
				{PNL: -10},
				{PNL: -20},
			},
			want: Stats{
				TotalTrades:  2,
				LosingTrades: 2,
				TotalPnL:     -30,
				AvgLoss:      15,
				BestTrade:    -10,
				WorstTrade:   -20,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.in)
			assert.Equal(t, tt.want.TotalTrades, got.TotalTrades)
			assert.Equal(t, tt.want.WinningTrades, got.WinningTrades)
			assert.Equal(t, tt.want.LosingTrades, got.LosingTrades)
			assert.InDelta(t, tt.want.WinRate, got.WinRate, 0.01)
			assert.InDelta(t, tt.want.TotalPnL, got.TotalPnL, 0.01)
			assert.InDelta(t, tt.want.AvgWin, got.AvgWin, 0.01)
			assert.InDelta(t, tt.want.AvgLoss, got.AvgLoss, 0.01)
			assert.InDelta(t, tt.want.BestTrade, got.BestTrade, 0.01)
			assert.InDelta(t, tt.want.WorstTrade, got.WorstTrade, 0.01)
			assert.InDelta(t, tt.want.ProfitFactor, got.ProfitFactor, 0.01)
		})
	}
}
