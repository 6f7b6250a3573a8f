// Package insight derives a single prioritized coaching observation from a
// trade collection by evaluating a fixed battery of independent heuristic
// rules. The battery is biased toward surfacing risk before praise: a danger
// candidate always beats a success one, whatever order the rules ran in.
package insight

import (
	"fmt"

	"tradejournal/internal/domain"
)

// Severity ranks an insight. Lower values take priority when selecting among
// candidates.
type Severity int

const (
	SeverityDanger Severity = iota
	SeverityWarning
	SeveritySuccess
	SeverityInfo
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityDanger:
		return "danger"
	case SeverityWarning:
		return "warning"
	case SeveritySuccess:
		return "success"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Insight is a single coaching observation ready for rendering.
type Insight struct {
	Message  string
	Severity Severity
	Icon     string // icon key for the presentation layer (lucide names)
}

// Rule evaluates a trade collection and either produces a candidate insight
// or abstains. Rules are pure and independent of each other.
type Rule func(trades []*domain.Trade) (Insight, bool)

// Fixed thresholds of the rule battery. Named here rather than hardcoded at
// the point of use; they are product constants, not user configuration.
const (
	// minTrades is the bootstrapping floor below which no rule is evaluated.
	minTrades = 3
	// comboMinCount is the minimum number of losing trades a
	// session+sentiment pair needs before it can be flagged.
	comboMinCount = 2
	// comboLossShare is the fraction of all losing trades the worst
	// session+sentiment pair must reach to emit a warning.
	comboLossShare = 0.30
	// recentWindow is how many of the most recent trades the discipline
	// trend compares against the overall compliance rate.
	recentWindow = 10
	// disciplineDropPoints is the compliance drop, in percentage points,
	// that triggers the slipping-discipline warning.
	disciplineDropPoints = 15
	// strongDisciplineRate is the recent compliance rate, in percent, that
	// earns praise when the recent window holds at least minRecentForPraise.
	strongDisciplineRate = 80
	minRecentForPraise   = 5
	// bestSessionMinTrades is the eligibility floor for the best-session rule.
	bestSessionMinTrades = 3
	// worstSentimentMinTrades is the eligibility floor per sentiment group.
	worstSentimentMinTrades = 2
	// fomoMinTrades / fomoLossShare gate the FOMO-specific danger insight.
	fomoMinTrades = 2
	fomoLossShare = 0.60
)

// Generator evaluates an ordered battery of rules and selects the single
// highest-priority candidate.
type Generator struct {
	rules []Rule
}

// NewGenerator returns a generator with the default rule battery.
func NewGenerator() *Generator {
	return &Generator{
		rules: []Rule{
			lossComboRule,
			disciplineTrendRule,
			bestSessionRule,
			worstSentimentRule,
			fomoRule,
		},
	}
}

// Generate returns exactly one insight for the given collection. It never
// fails: with fewer than minTrades trades it short-circuits to a welcome
// insight, and when every rule abstains it falls back to a keep-logging one.
func (g *Generator) Generate(trades []*domain.Trade) Insight {
	if len(trades) < minTrades {
		return Insight{
			Message:  fmt.Sprintf("Welcome. Log at least %d trades to unlock your first behavioral insights.", minTrades),
			Severity: SeverityInfo,
			Icon:     "sparkles",
		}
	}

	best := Insight{}
	found := false
	for _, rule := range g.rules {
		candidate, ok := rule(trades)
		if !ok {
			continue
		}
		// Strict "<" keeps the earliest candidate on severity ties.
		if !found || candidate.Severity < best.Severity {
			best = candidate
			found = true
		}
	}
	if !found {
		return Insight{
			Message:  "Keep logging your trades. Not enough signal yet to spot a pattern.",
			Severity: SeverityInfo,
			Icon:     "book-open",
		}
	}
	return best
}
