package cart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func TestRedisCache_Get_Success(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()
	sessionID := "session-123"

	cart := &domain.Cart{
		SessionID: sessionID,
		Items: []domain.CartItem{
			{ProductID: "lp-ev-100", Quantity: 2},
			{ProductID: "lp-home-5", Quantity: 3},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	cartJSON, _ := json.Marshal(cart)
	mr.Set(cacheKey(sessionID), string(cartJSON))

	result, err := cache.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessionID, result.SessionID)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "lp-ev-100", result.Items[0].ProductID)
}

func TestRedisCache_Get_CacheMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	result, err := cache.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestRedisCache_Get_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)

	mr.Set(cacheKey("session-123"), "{not json")

	result, err := cache.Get(context.Background(), "session-123")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRedisCache_SetThenGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	cart := &domain.Cart{
		SessionID: "session-9",
		Items: []domain.CartItem{
			{ProductID: "lp-solar-15", Name: "Legacy Solar Pro 15", Price: 3499, Quantity: 1},
		},
	}

	require.NoError(t, cache.Set(ctx, "session-9", cart))
	assert.True(t, mr.Exists(cacheKey("session-9")))

	// TTL must be the base TTL plus at most the jitter window.
	ttl := mr.TTL(cacheKey("session-9"))
	assert.GreaterOrEqual(t, ttl, 15*time.Minute)
	assert.LessOrEqual(t, ttl, 20*time.Minute)

	result, err := cache.Get(ctx, "session-9")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 3499.0, result.Items[0].Price)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "session-9", &domain.Cart{SessionID: "session-9"}))
	require.NoError(t, cache.Delete(ctx, "session-9"))

	assert.False(t, mr.Exists(cacheKey("session-9")))

	// Deleting an absent key is not an error.
	assert.NoError(t, cache.Delete(ctx, "session-9"))
}
