package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartTTL = 720 * time.Hour

func newRedisCache(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: 10 * time.Minute}), mock
}

func savedCart() models.CartState {
	return models.CartState{
		Items: []models.CartItem{{
			ID:        "p1-Flavor:Chocolate",
			ProductID: "p1",
			Name:      "Whey Protein",
			Price:     2499,
			Quantity:  2,
			Handle:    "whey-protein",
			Variants:  []models.ProductVariant{{Name: "Flavor", Option: "Chocolate"}},
		}},
		TotalItems:           2,
		ApplicableProductIDs: []string{},
	}
}

func TestRedisCache_Get(t *testing.T) {
	key := cache.Key(cache.CartStorageKeyPrefix, "user-1")

	t.Run("Success - Persisted Cart", func(t *testing.T) {
		// Arrange
		redisCache, mock := newRedisCache(t)
		raw, err := json.Marshal(savedCart())
		require.NoError(t, err)
		mock.ExpectGet(key).SetVal(string(raw))

		// Act
		var state models.CartState
		found, err := redisCache.Get(t.Context(), key, &state)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, savedCart(), state)
	})

	t.Run("Success - Miss Leaves Value Untouched", func(t *testing.T) {
		// Arrange
		redisCache, mock := newRedisCache(t)
		mock.ExpectGet(key).RedisNil()
		state := models.CartState{TotalItems: 7}

		// Act
		found, err := redisCache.Get(t.Context(), key, &state)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 7, state.TotalItems)
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := newRedisCache(t)
		boom := errors.New("connection reset by peer")
		mock.ExpectGet(key).SetErr(boom)

		// Act
		found, err := redisCache.Get(t.Context(), key, &models.CartState{})

		// Assert
		assert.False(t, found)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "redis get cart-storage:user-1")
	})

	t.Run("Failure - Corrupt Document", func(t *testing.T) {
		// Arrange
		redisCache, mock := newRedisCache(t)
		mock.ExpectGet(key).SetVal(`{"totalItems":"two"}`)

		// Act
		found, err := redisCache.Get(t.Context(), key, &models.CartState{})

		// Assert
		assert.False(t, found)

		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, err, &typeErr)
	})
}

func TestRedisCache_Set(t *testing.T) {
	key := cache.Key(cache.CartStorageKeyPrefix, "user-1")
	raw, err := json.Marshal(savedCart())
	require.NoError(t, err)

	ttlCases := []struct {
		name     string
		ttl      time.Duration
		expected time.Duration
	}{
		{name: "Success - Cart TTL", ttl: cartTTL, expected: cartTTL},
		{name: "Success - Zero TTL Uses Default", ttl: 0, expected: 10 * time.Minute},
		{name: "Success - Negative TTL Uses Default", ttl: -time.Second, expected: 10 * time.Minute},
	}

	for _, tc := range ttlCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			redisCache, mock := newRedisCache(t)
			mock.ExpectSet(key, raw, tc.expected).SetVal("OK")

			// Act
			err := redisCache.Set(t.Context(), key, savedCart(), tc.ttl)

			// Assert
			require.NoError(t, err)
		})
	}

	t.Run("Failure - Unencodable Value", func(t *testing.T) {
		// Arrange
		redisCache, _ := newRedisCache(t)

		// Act
		err := redisCache.Set(t.Context(), key, make(chan int), cartTTL)

		// Assert
		var typeErr *json.UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := newRedisCache(t)
		boom := errors.New("OOM command not allowed")
		mock.ExpectSet(key, raw, cartTTL).SetErr(boom)

		// Act
		err := redisCache.Set(t.Context(), key, savedCart(), cartTTL)

		// Assert
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "redis set cart-storage:user-1")
	})
}

func TestRedisCache_Delete(t *testing.T) {
	key := cache.Key(cache.ProductKeyPrefix, "whey-protein")

	t.Run("Success - Evict Product", func(t *testing.T) {
		// Arrange
		redisCache, mock := newRedisCache(t)
		mock.ExpectDel(key).SetVal(1)

		// Act
		err := redisCache.Delete(t.Context(), key)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := newRedisCache(t)
		boom := errors.New("READONLY replica")
		mock.ExpectDel(key).SetErr(boom)

		// Act
		err := redisCache.Delete(t.Context(), key)

		// Assert
		require.ErrorIs(t, err, boom)
	})
}

func TestRedisCache_Close(t *testing.T) {
	redisCache, _ := newRedisCache(t)
	assert.NoError(t, redisCache.Close())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cart-storage:user-1", cache.Key(cache.CartStorageKeyPrefix, "user-1"))
	assert.Equal(t, "product:protein-bar", cache.Key(cache.ProductKeyPrefix, "protein-bar"))
	assert.Equal(t, ":", cache.Key("", ""))
}

