package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tradejournal/config"
	"tradejournal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct {
	warns int
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.warns++
}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

// mockRepo implements ports.TradeRepository for testing
type mockRepo struct {
	trades  []*domain.Trade
	findErr error
	created []*domain.Trade
}

func (m *mockRepo) CreateTrade(ctx context.Context, trade *domain.Trade) (string, error) {
	m.created = append(m.created, trade)
	return "mock-id", nil
}
func (m *mockRepo) UpdateTrade(ctx context.Context, trade *domain.Trade) error { return nil }
func (m *mockRepo) DeleteTrade(ctx context.Context, id string) error           { return nil }
func (m *mockRepo) FindAll(ctx context.Context) ([]*domain.Trade, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.trades, nil
}
func (m *mockRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	return len(m.trades), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Timezone:   time.UTC,
		DemoSeed:   1,
		DemoTrades: 40,
	}
}

func TestNewJournalService_Validation(t *testing.T) {
	cfg := testConfig()
	logger := &mockLogger{}
	repo := &mockRepo{}

	_, err := NewJournalService(nil, logger, repo)
	assert.Error(t, err)
	_, err = NewJournalService(cfg, nil, repo)
	assert.Error(t, err)
	_, err = NewJournalService(cfg, logger, nil)
	assert.Error(t, err)

	svc, err := NewJournalService(cfg, logger, repo)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestDashboard_ComputesAllSections(t *testing.T) {
	now := time.Now().UTC()
	repo := &mockRepo{trades: []*domain.Trade{
		{ID: "1", Timestamp: now.AddDate(0, 0, -2), PNL: 100, Conforme: true},
		{ID: "2", Timestamp: now.AddDate(0, 0, -1), PNL: -50, Conforme: false},
		{ID: "3", Timestamp: now, PNL: -30, Conforme: false},
	}}
	svc, err := NewJournalService(testConfig(), &mockLogger{}, repo)
	require.NoError(t, err)

	snap, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.False(t, snap.Demo)
	assert.Len(t, snap.Trades, 3)
	require.NotNil(t, snap.Summary)
	assert.InDelta(t, 33.33, snap.Summary.DisciplineScore, 0.01)
	require.NotNil(t, snap.Stats)
	assert.InDelta(t, 20, snap.Stats.TotalPnL, 0.01)
	assert.NotEmpty(t, snap.Insight.Message)
	require.NotNil(t, snap.Heatmap)
	assert.Len(t, snap.Heatmap.Days, 365)
}

func TestDashboard_RepoFailureFallsBackToDemo(t *testing.T) {
	repo := &mockRepo{findErr: errors.New("disk on fire")}
	logger := &mockLogger{}
	svc, err := NewJournalService(testConfig(), logger, repo)
	require.NoError(t, err)

	snap, err := svc.Dashboard(context.Background())
	require.NoError(t, err, "a broken journal must degrade, not fail")

	assert.True(t, snap.Demo)
	assert.Len(t, snap.Trades, 40)
	assert.Equal(t, 1, logger.warns, "the fallback must be logged")
	assert.NotEmpty(t, snap.Insight.Message)
}

func TestDashboard_EmptyJournal(t *testing.T) {
	svc, err := NewJournalService(testConfig(), &mockLogger{}, &mockRepo{})
	require.NoError(t, err)

	snap, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.False(t, snap.Demo)
	assert.Zero(t, snap.Summary.TotalTrades)
	assert.Equal(t, "sparkles", snap.Insight.Icon, "an empty journal gets the welcome insight")
}

func TestAddTrade(t *testing.T) {
	repo := &mockRepo{}
	svc, err := NewJournalService(testConfig(), &mockLogger{}, repo)
	require.NoError(t, err)

	id, err := svc.AddTrade(context.Background(), &domain.Trade{PNL: 12.5, Conforme: true})
	require.NoError(t, err)
	assert.Equal(t, "mock-id", id)
	require.Len(t, repo.created, 1)
	assert.False(t, repo.created[0].Timestamp.IsZero(), "a missing timestamp is filled in")

	_, err = svc.AddTrade(context.Background(), nil)
	assert.Error(t, err)
}
