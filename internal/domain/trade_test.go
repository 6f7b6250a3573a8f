package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetPNL(t *testing.T) {
	tests := []struct {
		name string
		pnl  float64
		want float64
	}{
		{"positive passes through", 125.5, 125.5},
		{"negative passes through", -42, -42},
		{"zero is a valid flat trade", 0, 0},
		{"NaN coerced to zero", math.NaN(), 0},
		{"positive infinity coerced to zero", math.Inf(1), 0},
		{"negative infinity coerced to zero", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Trade{PNL: tt.pnl}
			assert.Equal(t, tt.want, tr.NetPNL())
		})
	}
}

func TestOptionalFieldPresence(t *testing.T) {
	tr := &Trade{}
	assert.False(t, tr.HasSetup())
	assert.False(t, tr.HasSession())
	assert.False(t, tr.HasSentiment())

	tr.Setup = "Breakout"
	tr.Session = SessionAsia
	tr.Sentiment = SentimentStressed
	assert.True(t, tr.HasSetup())
	assert.True(t, tr.HasSession())
	assert.True(t, tr.HasSentiment())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "New York", SessionNewYork.Label())
	assert.Equal(t, "FOMO", SentimentFOMO.Label())
	// Unknown values fall through verbatim rather than panicking.
	assert.Equal(t, "weird", Session("weird").Label())
}
