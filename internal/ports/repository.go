package ports

import (
	"context"
	"time"

	"tradejournal/internal/domain"
)

// TradeRepository defines the interface for storing and retrieving journaled trades.
// The analytics engines never write; all mutation happens through this boundary.
type TradeRepository interface {
	// CreateTrade saves a new trade record and returns its assigned ID.
	// A trade with an empty ID gets one minted by the repository.
	CreateTrade(ctx context.Context, trade *domain.Trade) (string, error)
	// UpdateTrade modifies an existing trade record.
	UpdateTrade(ctx context.Context, trade *domain.Trade) error
	// DeleteTrade removes a trade record by ID.
	DeleteTrade(ctx context.Context, id string) error
	// FindAll retrieves every trade in insertion order. Callers must not
	// assume the result is chronological.
	FindAll(ctx context.Context) ([]*domain.Trade, error)
	// CountSince counts trades recorded at or after the given instant.
	CountSince(ctx context.Context, since time.Time) (int, error)
}
