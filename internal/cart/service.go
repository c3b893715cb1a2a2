package cart

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// Service is the single source of truth for session carts. All consumers
// (catalog views, cart badge, checkout) read and mutate carts through it,
// so a mutation is visible on the very next read.
type Service struct {
	repo   CartRepository
	cache  CartCache
	logger *zap.Logger
	sfg    singleflight.Group // Prevents cache stampede
}

func NewService(repo CartRepository, cache CartCache, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// GetCart returns the session's cart. A session without a cart gets an empty
// one; absence is not an error.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, sessionID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("cache get error", zap.Error(err)) // log cache error but continue
		}

		cart, errGet := s.repo.GetCart(ctx, sessionID)
		if errGet != nil {
			if errors.Is(errGet, ErrCartNotFound) {
				return &domain.Cart{
					SessionID: sessionID,
					Items:     nil,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}, nil
			}
			return nil, errGet
		}

		// set cache
		go func() {
			if errSet := s.cache.Set(context.Background(), sessionID, cart); errSet != nil {
				s.logger.Warn("cache set error", zap.Error(errSet))
			}
		}()

		return cart, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

// AddItem adds quantity units of product to the session's cart, merging into
// the existing line item when the product is already present. A non-positive
// quantity is clamped to 1 rather than rejected; out-of-stock products are
// not refused here, stock gating belongs to the presentation layer.
func (s *Service) AddItem(ctx context.Context, sessionID string, product *domain.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	newQuantity := quantity
	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil && !errors.Is(err, ErrCartNotFound) {
		return err
	}
	if cart != nil {
		if i := cart.FindItem(product.ID); i >= 0 {
			newQuantity = cart.Items[i].Quantity + quantity
		}
	}

	item := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Capacity:  product.Capacity,
		Voltage:   product.Voltage,
		Quantity:  newQuantity,
	}

	if err := s.repo.AddItem(ctx, sessionID, item); err != nil {
		s.logger.Error("repo add item error", zap.Error(err))
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

// UpdateQuantity sets a line item's quantity. A quantity of zero or less
// removes the line item; an absent product id is silently ignored.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID string, quantity int) error {
	var err error
	if quantity <= 0 {
		err = s.repo.RemoveItem(ctx, sessionID, productID)
	} else {
		err = s.repo.UpdateItemQuantity(ctx, sessionID, productID, quantity)
	}
	if err != nil {
		if isAbsence(err) {
			return nil
		}
		s.logger.Error("repo update item quantity error", zap.Error(err))
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

// RemoveItem deletes a line item unconditionally; absence is a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID string) error {
	if err := s.repo.RemoveItem(ctx, sessionID, productID); err != nil {
		if isAbsence(err) {
			return nil
		}
		s.logger.Error("repo remove item error", zap.Error(err))
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

// ClearCart empties the session's cart unconditionally.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.repo.DeleteCart(ctx, sessionID); err != nil {
		if isAbsence(err) {
			return nil
		}
		s.logger.Error("repo delete cart error", zap.Error(err))
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

// CartTotal returns the sum of price × quantity over the session's cart.
func (s *Service) CartTotal(ctx context.Context, sessionID string) (float64, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

// CartCount returns the total unit count, used for the cart badge.
func (s *Service) CartCount(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (s *Service) invalidateCache(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("cache invalidate error", zap.Error(err))
	}
}

func isAbsence(err error) bool {
	return errors.Is(err, ErrCartNotFound) || errors.Is(err, ErrItemNotFound)
}
