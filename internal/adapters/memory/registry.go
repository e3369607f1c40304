package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/port"
	"github.com/Allirose140/SmartStackPro/internal/core/serviceerrors"
)

// productEntry carries the per-product lock. Stock mutations serialize on
// it; the registry map's RWMutex only guards membership. The deleted flag
// tombstones an entry so a caller holding a stale pointer cannot commit
// into a record that has left the map.
type productEntry struct {
	mu      sync.Mutex
	product domain.Product
	deleted bool
}

type ProductRepository struct {
	mu      sync.RWMutex
	entries map[domain.ID]*productEntry
	nextID  atomic.Int64
}

func NewProductRepository() port.ProductPort {
	return &ProductRepository{entries: make(map[domain.ID]*productEntry)}
}

func (r *ProductRepository) Create(_ context.Context, product *domain.Product) error {
	product.ID = domain.ID(r.nextID.Add(1))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[product.ID] = &productEntry{product: *product}
	return nil
}

func (r *ProductRepository) entry(id domain.ID) (*productEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}
	return entry, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id domain.ID) (*domain.Product, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}
	product := entry.product
	return &product, nil
}

func (r *ProductRepository) GetAll(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	entries := make([]*productEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		if entry.deleted {
			entry.mu.Unlock()
			continue
		}
		product := entry.product
		entry.mu.Unlock()
		products = append(products, &product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *ProductRepository) Update(_ context.Context, product *domain.Product) error {
	entry, err := r.entry(product.ID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return serviceerrors.NewNotFoundError("product not found")
	}
	entry.product = *product
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id domain.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return serviceerrors.NewNotFoundError("product not found")
	}

	// Waits out any in-flight mutation, then tombstones the entry so a
	// caller that already resolved the pointer sees the deletion.
	entry.mu.Lock()
	entry.deleted = true
	entry.mu.Unlock()

	delete(r.entries, id)
	return nil
}

func (r *ProductRepository) Mutate(_ context.Context, id domain.ID, fn func(product *domain.Product) error) (*domain.Product, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}

	// fn works on a copy; the stored record changes only on success.
	work := entry.product
	if err := fn(&work); err != nil {
		return nil, err
	}
	entry.product = work
	result := work
	return &result, nil
}
