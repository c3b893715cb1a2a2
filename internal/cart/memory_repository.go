package cart

import (
	"context"
	"sync"
	"time"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// MemoryRepository keeps session carts in process memory. It is the default
// backend: a cart only needs to live as long as the browsing session.
type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart // sessionID -> cart
}

// NewMemoryRepository creates an empty in-memory cart repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		carts: make(map[string]*domain.Cart),
	}
}

func (r *MemoryRepository) GetCart(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, exists := r.carts[sessionID]
	if !exists {
		return nil, ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (r *MemoryRepository) AddItem(_ context.Context, sessionID string, item domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	item.AddedAt = now

	cart, exists := r.carts[sessionID]
	if !exists {
		r.carts[sessionID] = &domain.Cart{
			SessionID: sessionID,
			Items:     []domain.CartItem{item},
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	}

	if i := cart.FindItem(item.ProductID); i >= 0 {
		cart.Items[i].Quantity = item.Quantity
		cart.Items[i].AddedAt = now
	} else {
		cart.Items = append(cart.Items, item)
	}
	cart.UpdatedAt = now
	return nil
}

func (r *MemoryRepository) UpdateItemQuantity(_ context.Context, sessionID string, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, exists := r.carts[sessionID]
	if !exists {
		return ErrCartNotFound
	}

	i := cart.FindItem(productID)
	if i < 0 {
		return ErrItemNotFound
	}

	cart.Items[i].Quantity = quantity
	cart.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryRepository) RemoveItem(_ context.Context, sessionID string, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, exists := r.carts[sessionID]
	if !exists {
		return ErrCartNotFound
	}

	i := cart.FindItem(productID)
	if i < 0 {
		return ErrItemNotFound
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	cart.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryRepository) DeleteCart(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.carts[sessionID]; !exists {
		return ErrCartNotFound
	}
	delete(r.carts, sessionID)
	return nil
}

// copyCart returns a deep enough copy that callers can never mutate stored
// state through a returned cart.
func copyCart(cart *domain.Cart) *domain.Cart {
	out := *cart
	out.Items = make([]domain.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return &out
}
