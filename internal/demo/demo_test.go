package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrades_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	a := GenerateTrades(DefaultTrades, 7, now)
	b := GenerateTrades(DefaultTrades, 7, now)

	require.Len(t, a, DefaultTrades)
	require.Len(t, b, DefaultTrades)
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].PNL, b[i].PNL)
		assert.Equal(t, a[i].Conforme, b[i].Conforme)
		assert.True(t, a[i].Timestamp.Equal(b[i].Timestamp))
	}

	c := GenerateTrades(DefaultTrades, 8, now)
	diff := false
	for i := range a {
		if a[i].PNL != c[i].PNL {
			diff = true
			break
		}
	}
	assert.True(t, diff, "different seeds must produce different datasets")
}

func TestGenerateTrades_TimestampsChronologicalAndPast(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	trades := GenerateTrades(DefaultTrades, 1, now)

	for i, tr := range trades {
		assert.True(t, tr.Timestamp.Before(now), "trade %d must predate now", i)
		if i > 0 {
			assert.True(t, tr.Timestamp.After(trades[i-1].Timestamp), "trade %d out of order", i)
		}
	}
}

func TestGenerateTrades_PnLBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	for _, tr := range GenerateTrades(200, 42, now) {
		if tr.Conforme {
			assert.GreaterOrEqual(t, tr.PNL, -100.0)
			assert.Less(t, tr.PNL, 400.0)
		} else {
			assert.GreaterOrEqual(t, tr.PNL, -300.0)
			assert.Less(t, tr.PNL, 100.0)
		}
	}
}
