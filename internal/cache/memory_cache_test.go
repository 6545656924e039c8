package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func TestMemoryCache(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Set then Get", func(t *testing.T) {
		// Arrange
		c := NewMemoryCache(time.Minute)
		want := cartEntry{ProductID: "protein-bar", Quantity: 2}

		// Act
		require.NoError(t, c.Set(ctx, "cart-storage:u1", want, 0))

		var got cartEntry
		found, err := c.Get(ctx, "cart-storage:u1", &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
	})

	t.Run("Success - Miss", func(t *testing.T) {
		c := NewMemoryCache(time.Minute)

		var got cartEntry
		found, err := c.Get(ctx, "missing", &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Success - Expired entry is a miss", func(t *testing.T) {
		// Arrange
		c := NewMemoryCache(time.Minute).(*memoryCache)
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return now }

		require.NoError(t, c.Set(ctx, "k", cartEntry{Quantity: 1}, time.Second))

		// Act
		now = now.Add(2 * time.Second)

		var got cartEntry
		found, err := c.Get(ctx, "k", &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.NotContains(t, c.entries, "k")
	})

	t.Run("Success - Set sweeps idle expired entries", func(t *testing.T) {
		// Arrange
		c := NewMemoryCache(time.Minute).(*memoryCache)
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return now }

		require.NoError(t, c.Set(ctx, "cart-storage:idle", cartEntry{Quantity: 1}, time.Second))
		require.NoError(t, c.Set(ctx, "cart-storage:kept", cartEntry{Quantity: 1}, time.Hour))

		// Act
		now = now.Add(30 * time.Second)
		require.NoError(t, c.Set(ctx, "cart-storage:early", cartEntry{Quantity: 1}, time.Hour))
		entriesBeforeInterval := len(c.entries)

		now = now.Add(sweepInterval)
		require.NoError(t, c.Set(ctx, "cart-storage:fresh", cartEntry{Quantity: 3}, 0))

		// Assert
		assert.Equal(t, 3, entriesBeforeInterval)
		assert.NotContains(t, c.entries, "cart-storage:idle")
		assert.Contains(t, c.entries, "cart-storage:kept")
		assert.Contains(t, c.entries, "cart-storage:early")
		assert.Contains(t, c.entries, "cart-storage:fresh")
	})

	t.Run("Success - Delete", func(t *testing.T) {
		c := NewMemoryCache(0)
		require.NoError(t, c.Set(ctx, "k", cartEntry{Quantity: 1}, 0))

		require.NoError(t, c.Delete(ctx, "k"))

		var got cartEntry
		found, err := c.Get(ctx, "k", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		c := NewMemoryCache(0)

		err := c.Set(ctx, "k", make(chan int), 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal value for key k")
	})
}
