// Package heatmap bins a trade collection into a GitHub-style 365-day
// calendar grid of daily net PnL, with color-intensity classification and
// month-label placement for the presentation layer.
package heatmap

import (
	"time"

	"tradejournal/internal/domain"
)

// DaysInRange is the size of the heatmap window, today included.
const DaysInRange = 365

// rowsPerWeek is the height of a week column (Sunday through Saturday).
const rowsPerWeek = 7

// Shade classifies a day cell into one of nine color buckets.
type Shade int

const (
	ShadeEmpty Shade = iota // no trades, or trades netting exactly to zero
	ShadeProfit1            // faintest profit
	ShadeProfit2
	ShadeProfit3
	ShadeProfit4 // strongest profit
	ShadeLoss1   // faintest loss
	ShadeLoss2
	ShadeLoss3
	ShadeLoss4 // strongest loss
)

// Day is one calendar day of the grid.
type Day struct {
	Date      time.Time // truncated to local midnight
	PnL       float64   // net PnL of the day's trades
	HasTrades bool      // distinguishes "no trades" from "trades netting to zero"
	Shade     Shade
}

// MonthLabel anchors a month name to the week column where it starts.
type MonthLabel struct {
	Month   time.Month
	Year    int
	WeekIdx int
}

// Grid is the full heatmap layout plus its summary counters.
type Grid struct {
	Days        []Day
	Weeks       [][]*Day // 7 rows per column; nil cells are leading/trailing padding
	MonthLabels []MonthLabel
	MaxAbsPnL   float64

	// Counters over days with a nonzero aggregate only. Net-zero and
	// no-trade days are excluded from all three.
	TradingDays int
	WinningDays int
	LosingDays  int
}

// Build bins trades into the 365-day grid ending at today. Both the trade
// grouping and the range enumeration truncate through the same localDay
// helper so boundary trades cannot land in the wrong bucket. The input
// collection is never mutated and may be in any order.
func Build(trades []*domain.Trade, today time.Time, loc *time.Location) *Grid {
	end := localDay(today, loc)
	start := end.AddDate(0, 0, -(DaysInRange - 1))

	// Net PnL per day. Days with trades netting to zero keep their entry,
	// distinct from days with no trades at all.
	pnlByDay := make(map[time.Time]float64)
	for _, t := range trades {
		day := localDay(t.Timestamp, loc)
		pnlByDay[day] += t.NetPNL()
	}

	g := &Grid{Days: make([]Day, 0, DaysInRange)}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := Day{Date: d}
		if pnl, ok := pnlByDay[d]; ok {
			day.PnL = pnl
			day.HasTrades = true
			if abs := absFloat(pnl); abs > g.MaxAbsPnL {
				g.MaxAbsPnL = abs
			}
		}
		g.Days = append(g.Days, day)
	}
	if g.MaxAbsPnL == 0 {
		g.MaxAbsPnL = 1 // avoid division by zero when no trades fall in range
	}

	for i := range g.Days {
		g.Days[i].Shade = classify(g.Days[i], g.MaxAbsPnL)
		if g.Days[i].HasTrades && g.Days[i].PnL != 0 {
			g.TradingDays++
			if g.Days[i].PnL > 0 {
				g.WinningDays++
			} else {
				g.LosingDays++
			}
		}
	}

	g.Weeks = binWeeks(g.Days)
	g.MonthLabels = placeMonthLabels(g.Weeks)
	return g
}

// classify maps a day onto its shade bucket. Intensity is |pnl| scaled by the
// range-wide maximum, clamped to [0,1], with breakpoints at 0.75/0.5/0.25.
// A day netting exactly to zero renders as empty, not as the faintest shade.
func classify(d Day, maxAbs float64) Shade {
	if !d.HasTrades || d.PnL == 0 {
		return ShadeEmpty
	}
	intensity := absFloat(d.PnL) / maxAbs
	if intensity > 1 {
		intensity = 1
	}
	if d.PnL > 0 {
		switch {
		case intensity > 0.75:
			return ShadeProfit4
		case intensity > 0.5:
			return ShadeProfit3
		case intensity > 0.25:
			return ShadeProfit2
		default:
			return ShadeProfit1
		}
	}
	switch {
	case intensity > 0.75:
		return ShadeLoss4
	case intensity > 0.5:
		return ShadeLoss3
	case intensity > 0.25:
		return ShadeLoss2
	default:
		return ShadeLoss1
	}
}

// binWeeks lays days out into Sunday-aligned 7-row columns. The first and
// last columns may be partially filled; padding cells stay nil and partial
// trailing columns are emitted, never dropped.
func binWeeks(days []Day) [][]*Day {
	var weeks [][]*Day
	current := make([]*Day, rowsPerWeek)
	for i := range days {
		d := &days[i]
		weekday := int(d.Date.Weekday()) // 0=Sunday, 6=Saturday
		current[weekday] = d
		if weekday == rowsPerWeek-1 || i == len(days)-1 {
			weeks = append(weeks, current)
			current = make([]*Day, rowsPerWeek)
		}
	}
	return weeks
}

// placeMonthLabels emits one label per month transition, anchored to the
// column whose first present day opens the new month. A month never gets a
// second label even when it spans several columns.
func placeMonthLabels(weeks [][]*Day) []MonthLabel {
	var labels []MonthLabel
	lastMonth := time.Month(0)
	for idx, week := range weeks {
		var first *Day
		for _, d := range week {
			if d != nil {
				first = d
				break
			}
		}
		if first == nil {
			continue
		}
		if m := first.Date.Month(); m != lastMonth {
			labels = append(labels, MonthLabel{Month: m, Year: first.Date.Year(), WeekIdx: idx})
			lastMonth = m
		}
	}
	return labels
}

// localDay truncates an instant to midnight of its calendar day in loc.
// This is the single day-bucketing definition shared by grouping and
// enumeration.
func localDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
