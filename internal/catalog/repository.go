package catalog

import (
	"context"
	"errors"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// ErrProductNotFound is returned when a product id is absent from the
// catalog. Callers surface it as a recoverable not-found state.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the read surface of the catalog.
// Consumers define this interface, not the storage implementation.
type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Close() error
}
