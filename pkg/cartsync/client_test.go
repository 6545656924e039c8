package cartsync_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/cartsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SyncItems(t *testing.T) {
	t.Run("Success - Posts Items With Token", func(t *testing.T) {
		// Arrange
		var got models.CartSyncRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, cartsync.SyncPath, r.URL.Path)
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cartsync.NewClient(server.URL+"/", "token-1", server.Client())
		items := []models.CartItem{{ID: "p1", ProductID: "p1", Name: "Whey", Price: 1999, Quantity: 2, Handle: "whey"}}

		// Act
		err := client.SyncItems(t.Context(), items)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, items, got.Items)
	})

	t.Run("Success - Nil Items Sent As Empty List", func(t *testing.T) {
		// Arrange
		var raw map[string]json.RawMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		}))
		defer server.Close()

		client := cartsync.NewClient(server.URL, "token-1", server.Client())

		// Act
		err := client.SyncItems(t.Context(), nil)

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw["items"]))
	})

	t.Run("Failure - Receiver Error", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer server.Close()

		client := cartsync.NewClient(server.URL, "bad", server.Client())

		// Act
		err := client.SyncItems(t.Context(), []models.CartItem{})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "unauthorized")
	})

	t.Run("Failure - Context Deadline", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		client := cartsync.NewClient(server.URL, "token-1", server.Client())
		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()

		// Act
		err := client.SyncItems(ctx, []models.CartItem{})

		// Assert
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClient_EditItem(t *testing.T) {
	t.Run("Success - Patches Edit", func(t *testing.T) {
		// Arrange
		var got models.CartEditRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, cartsync.EditPath, r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		}))
		defer server.Close()

		client := cartsync.NewClient(server.URL, "token-1", server.Client())

		// Act
		err := client.EditItem(t.Context(), models.EditActionUpdateQty, models.CartItem{ProductID: "p1", Quantity: 4})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.EditActionUpdateQty, got.Action)
		assert.Equal(t, 4, got.Item.Quantity)
	})
}
