package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/Allirose140/SmartStackPro/internal/adapters/outbox"
)

// OutboxRepository queues alert events in process until the outbox
// handler drains them to the broker. Entries do not survive a restart,
// which matches the rest of the engine.
type OutboxRepository struct {
	mu      sync.Mutex
	nextID  int64
	pending []outbox.Entry
}

func NewOutboxRepository() outbox.Repository {
	return &OutboxRepository{}
}

func (r *OutboxRepository) Insert(_ context.Context, entry outbox.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = strconv.FormatInt(r.nextID, 10)
	r.pending = append(r.pending, entry)
	return nil
}

func (r *OutboxRepository) FetchPending(_ context.Context, limit int) ([]outbox.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.pending)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]outbox.Entry, n)
	copy(out, r.pending[:n])
	return out, nil
}

func (r *OutboxRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pending {
		if r.pending[i].ID == id {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return nil
		}
	}
	return nil
}
