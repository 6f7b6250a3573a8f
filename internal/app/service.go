package app

import (
	"context"
	"fmt"
	"time"

	"tradejournal/config"
	"tradejournal/internal/analytics"
	"tradejournal/internal/demo"
	"tradejournal/internal/domain"
	"tradejournal/internal/heatmap"
	"tradejournal/internal/insight"
	"tradejournal/internal/ports"
)

// Snapshot bundles everything a dashboard render needs for one point in time.
// Each section is computed independently from the same trade slice, so a
// partial journal still yields a complete snapshot.
type Snapshot struct {
	Summary *analytics.Summary
	Stats   *analytics.Stats
	Insight insight.Insight
	Heatmap *heatmap.Grid
	Trades  []*domain.Trade
	// Demo is true when the journal could not be fetched and the snapshot
	// was computed from a generated dataset instead.
	Demo bool
}

// JournalService orchestrates the analytics engines over the stored journal.
type JournalService struct {
	logger    ports.Logger
	repo      ports.TradeRepository
	generator *insight.Generator
	loc       *time.Location
	demoSeed  int64
	demoSize  int
}

// NewJournalService creates a new journal service instance.
func NewJournalService(cfg *config.Config, logger ports.Logger, repo ports.TradeRepository) (*JournalService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if repo == nil {
		return nil, fmt.Errorf("trade repository cannot be nil")
	}
	loc := cfg.Timezone
	if loc == nil {
		loc = time.Local
	}
	return &JournalService{
		logger:    logger,
		repo:      repo,
		generator: insight.NewGenerator(),
		loc:       loc,
		demoSeed:  cfg.DemoSeed,
		demoSize:  cfg.DemoTrades,
	}, nil
}

// Dashboard loads the journal and runs every engine over it.
// A repository failure is downgraded to a demo snapshot rather than an error,
// so the dashboard always has something to show.
func (s *JournalService) Dashboard(ctx context.Context) (*Snapshot, error) {
	now := time.Now().In(s.loc)

	trades, err := s.repo.FindAll(ctx)
	isDemo := false
	if err != nil {
		s.logger.Warn(ctx, "Failed to load journal, falling back to demo dataset", map[string]interface{}{"error": err.Error()})
		trades = demo.GenerateTrades(s.demoSize, s.demoSeed, now)
		isDemo = true
	}

	snap := &Snapshot{
		Summary: analytics.Summarize(trades),
		Stats:   analytics.ComputeStats(trades),
		Insight: s.generator.Generate(trades),
		Heatmap: heatmap.Build(trades, now, s.loc),
		Trades:  trades,
		Demo:    isDemo,
	}

	s.logger.Debug(ctx, "Dashboard snapshot computed", map[string]interface{}{
		"trades":           len(trades),
		"discipline_score": snap.Summary.DisciplineScore,
		"insight":          snap.Insight.Message,
		"demo":             isDemo,
	})
	return snap, nil
}

// AddTrade records a new trade in the journal and returns its assigned ID.
func (s *JournalService) AddTrade(ctx context.Context, trade *domain.Trade) (string, error) {
	if trade == nil {
		return "", fmt.Errorf("%w: trade cannot be nil", ports.ErrInvalidRequest)
	}
	if trade.Timestamp.IsZero() {
		trade.Timestamp = time.Now().In(s.loc)
	}
	id, err := s.repo.CreateTrade(ctx, trade)
	if err != nil {
		s.logger.Error(ctx, err, "Failed to record trade")
		return "", fmt.Errorf("recording trade: %w", err)
	}
	s.logger.Info(ctx, "Trade recorded", map[string]interface{}{"id": id, "pnl": trade.NetPNL(), "conforme": trade.Conforme})
	return id, nil
}
