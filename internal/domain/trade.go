package domain

import (
	"math"
	"time"
)

// Trade represents a single journaled trade.
type Trade struct {
	ID        string    // Unique identifier for the trade (usually from DB)
	Timestamp time.Time // When the trade was recorded; binned at day granularity
	PNL       float64   // Profit and Loss for this trade; zero is a valid flat trade
	Conforme  bool      // Whether the trade followed the user's trading plan
	Setup     string    // Strategy pattern used (e.g. "Breakout"); empty if not recorded
	Session   Session   // Market session; empty if not recorded
	Sentiment Sentiment // Self-reported emotional state; empty if not recorded
}

// NetPNL returns the trade's pnl with malformed values (NaN, ±Inf) coerced
// to 0, so aggregates built on it stay finite. All analytics go through this.
func (t *Trade) NetPNL() float64 {
	if math.IsNaN(t.PNL) || math.IsInf(t.PNL, 0) {
		return 0
	}
	return t.PNL
}

// HasSetup reports whether a setup label was recorded for this trade.
func (t *Trade) HasSetup() bool { return t.Setup != "" }

// HasSession reports whether a session was recorded for this trade.
func (t *Trade) HasSession() bool { return t.Session != "" }

// HasSentiment reports whether a sentiment was recorded for this trade.
func (t *Trade) HasSentiment() bool { return t.Sentiment != "" }
