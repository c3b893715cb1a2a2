package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

type mockCache struct {
	m       sync.RWMutex
	cart    *domain.Cart
	deletes int
}

func (m *mockCache) Get(context.Context, string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.cart == nil {
		return nil, ErrCacheMiss
	}
	return m.cart, nil
}

func (m *mockCache) Set(_ context.Context, _ string, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = cart
	return nil
}

func (m *mockCache) Delete(context.Context, string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = nil
	m.deletes++
	return nil
}

func (m *mockCache) deleteCount() int {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.deletes
}

// newTestService uses the no-op cache so every read reflects the repository
// directly; cache behavior has its own tests below.
func newTestService() *Service {
	return NewService(NewMemoryRepository(), NewNoopCache(), zap.NewNop())
}

func testProduct(id string, price float64) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     "Test " + id,
		Price:    price,
		Capacity: "10 kWh",
		Voltage:  "48V",
		InStock:  true,
	}
}

func TestService_AddItem_MergesRepeatedAdds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p := testProduct("lp-ev-100", 12999)
	require.NoError(t, svc.AddItem(ctx, "s1", p, 1))
	require.NoError(t, svc.AddItem(ctx, "s1", p, 2))
	require.NoError(t, svc.AddItem(ctx, "s1", p, 1))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)

	// One line item whose quantity is the sum of the added quantities.
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, "lp-ev-100", cart.Items[0].ProductID)
}

func TestService_AddItem_ClampsNonPositiveQuantity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 0))
	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("b", 100), -5))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestService_AddItem_PreservesInsertionOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("first", 1), 1))
	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("second", 2), 1))
	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("third", 3), 1))
	// Re-adding an earlier product must not move its line.
	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("first", 1), 1))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 3)
	assert.Equal(t, "first", cart.Items[0].ProductID)
	assert.Equal(t, "second", cart.Items[1].ProductID)
	assert.Equal(t, "third", cart.Items[2].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestService_UpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		svc := newTestService()
		ctx := context.Background()

		require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 2))
		require.NoError(t, svc.UpdateQuantity(ctx, "s1", "a", quantity))

		cart, err := svc.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	}
}

func TestService_UpdateQuantity_SetsQuantity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 2))
	require.NoError(t, svc.UpdateQuantity(ctx, "s1", "a", 7))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestService_UpdateQuantity_AbsentProductIsNoOp(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 1))

	assert.NoError(t, svc.UpdateQuantity(ctx, "s1", "missing", 5))
	assert.NoError(t, svc.UpdateQuantity(ctx, "empty-session", "a", 5))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestService_RemoveItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 1))
	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("b", 200), 1))

	require.NoError(t, svc.RemoveItem(ctx, "s1", "a"))
	// Absent removals are silently ignored.
	assert.NoError(t, svc.RemoveItem(ctx, "s1", "a"))
	assert.NoError(t, svc.RemoveItem(ctx, "nobody", "a"))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "b", cart.Items[0].ProductID)
}

func TestService_TotalsAndCount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	total, err := svc.CartTotal(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 2499), 2))
	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("b", 1499), 3))

	total, err = svc.CartTotal(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, float64(2499*2+1499*3), total)

	count, err := svc.CartCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestService_ClearCart(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 4))
	require.NoError(t, svc.ClearCart(ctx, "s1"))
	// Clearing an already-empty cart is fine.
	assert.NoError(t, svc.ClearCart(ctx, "s1"))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestService_MutationsInvalidateCache(t *testing.T) {
	cache := &mockCache{}
	svc := NewService(NewMemoryRepository(), cache, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 1))
	before := cache.deleteCount()

	require.NoError(t, svc.UpdateQuantity(ctx, "s1", "a", 3))
	require.NoError(t, svc.RemoveItem(ctx, "s1", "a"))
	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 1))
	require.NoError(t, svc.ClearCart(ctx, "s1"))

	assert.Equal(t, before+4, cache.deleteCount())
}

func TestService_GetCart_ServesFromCache(t *testing.T) {
	cache := &mockCache{}
	svc := NewService(NewMemoryRepository(), cache, zap.NewNop())
	ctx := context.Background()

	cached := &domain.Cart{
		SessionID: "s1",
		Items:     []domain.CartItem{{ProductID: "cached", Quantity: 9}},
	}
	require.NoError(t, cache.Set(ctx, "s1", cached))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "cached", cart.Items[0].ProductID)
}

func TestService_SessionsAreIsolated(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", testProduct("a", 100), 1))
	require.NoError(t, svc.AddItem(ctx, "s2", testProduct("b", 200), 2))

	c1, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	c2, err := svc.GetCart(ctx, "s2")
	require.NoError(t, err)

	require.Len(t, c1.Items, 1)
	require.Len(t, c2.Items, 1)
	assert.Equal(t, "a", c1.Items[0].ProductID)
	assert.Equal(t, "b", c2.Items[0].ProductID)
}
