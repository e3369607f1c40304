package port

import (
	"context"

	"github.com/Allirose140/SmartStackPro/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductPort is the product registry. Create assigns the id. Mutate runs
// fn under the product's exclusive lock: fn receives a working copy, and
// the copy replaces the stored record only when fn returns nil, so a
// failed mutation leaves no partial state. Mutations on different
// products do not block each other.
type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id domain.ID) error
	Mutate(ctx context.Context, id domain.ID, fn func(product *domain.Product) error) (*domain.Product, error)
}
