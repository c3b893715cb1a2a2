package catalog

import (
	"context"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// MemoryRepository serves the catalog straight from the seed dataset.
// It is the default backend when no database path is configured.
type MemoryRepository struct {
	products []domain.Product
}

// NewMemoryRepository creates a repository over the built-in seed dataset.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{products: SeedProducts()}
}

func (r *MemoryRepository) GetAllProducts(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(r.products))
	for i := range r.products {
		p := r.products[i]
		out[i] = &p
	}
	return out, nil
}

func (r *MemoryRepository) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *MemoryRepository) Close() error {
	return nil
}
