package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/port"
	"github.com/Allirose140/SmartStackPro/internal/core/serviceerrors"
)

type LedgerRepository struct {
	mu     sync.RWMutex
	log    []domain.Transaction
	nextID atomic.Int64
	clock  port.Clock
}

func NewLedgerRepository(clock port.Clock) port.LedgerPort {
	return &LedgerRepository{clock: clock}
}

func (r *LedgerRepository) Append(_ context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	if !tx.Type.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("unknown transaction type")
	}

	tx.ID = domain.ID(r.nextID.Add(1))
	tx.Timestamp = r.clock.Now()
	if tx.PerformedBy == "" {
		tx.PerformedBy = "System"
	}

	// The record is fully populated before it becomes visible, so
	// readers never observe a half-written entry.
	r.mu.Lock()
	r.log = append(r.log, tx)
	r.mu.Unlock()

	stored := tx
	return &stored, nil
}

func (r *LedgerRepository) snapshot(keep func(*domain.Transaction) bool) []*domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Transaction, 0)
	for i := range r.log {
		tx := r.log[i]
		if keep(&tx) {
			out = append(out, &tx)
		}
	}
	return out
}

// newestFirst orders by timestamp descending, breaking timestamp ties by
// id descending so the ordering is total.
func newestFirst(txs []*domain.Transaction) []*domain.Transaction {
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].Timestamp.Equal(txs[j].Timestamp) {
			return txs[i].Timestamp.After(txs[j].Timestamp)
		}
		return txs[i].ID > txs[j].ID
	})
	return txs
}

func (r *LedgerRepository) HistoryByProduct(_ context.Context, productID domain.ID) ([]*domain.Transaction, error) {
	return newestFirst(r.snapshot(func(tx *domain.Transaction) bool {
		return tx.ProductID == productID
	})), nil
}

func (r *LedgerRepository) HistoryByProductRange(_ context.Context, productID domain.ID, start, end time.Time) ([]*domain.Transaction, error) {
	return newestFirst(r.snapshot(func(tx *domain.Transaction) bool {
		return tx.ProductID == productID &&
			!tx.Timestamp.Before(start) && !tx.Timestamp.After(end)
	})), nil
}

func (r *LedgerRepository) Recent(_ context.Context, days int) ([]*domain.Transaction, error) {
	cutoff := r.clock.Now().AddDate(0, 0, -days)
	return newestFirst(r.snapshot(func(tx *domain.Transaction) bool {
		return tx.Timestamp.After(cutoff)
	})), nil
}

func (r *LedgerRepository) All(_ context.Context) ([]*domain.Transaction, error) {
	return r.snapshot(func(*domain.Transaction) bool { return true }), nil
}
