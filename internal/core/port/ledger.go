package port

import (
	"context"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// LedgerPort is the append-only transaction log. Append assigns the id
// (one counter shared across all products) and the timestamp, and returns
// the stored record; entries are never updated or deleted. Query results
// are snapshots ordered newest first, except All which keeps insertion
// order.
type LedgerPort interface {
	Append(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)
	HistoryByProduct(ctx context.Context, productID domain.ID) ([]*domain.Transaction, error)
	HistoryByProductRange(ctx context.Context, productID domain.ID, start, end time.Time) ([]*domain.Transaction, error)
	Recent(ctx context.Context, days int) ([]*domain.Transaction, error)
	All(ctx context.Context) ([]*domain.Transaction, error)
}
