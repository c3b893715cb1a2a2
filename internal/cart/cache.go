package cart

import (
	"context"
	"errors"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// CartCache sits in front of the repository on the read path.
type CartCache interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Set(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

var ErrCacheMiss = errors.New("cache miss")

// NoopCache is used when no redis address is configured; every read is a
// miss and goes straight to the repository.
type NoopCache struct{}

func NewNoopCache() NoopCache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string) (*domain.Cart, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, *domain.Cart) error {
	return nil
}

func (NoopCache) Delete(context.Context, string) error {
	return nil
}
