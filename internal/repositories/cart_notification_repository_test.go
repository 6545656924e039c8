package repository_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const notificationsNS = "storefront.cartnotifications"

func TestCartNotificationRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Upsert Success", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		notification := &models.CartNotification{
			UserID:   "user-1",
			Email:    "jane@example.com",
			Products: []models.CartProduct{{ProductID: "p1", Name: "Whey", Price: 1999, Quantity: 1}},
			IsSent:   true,
		}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		// Act
		err := repo.Upsert(t.Context(), notification)

		// Assert
		require.NoError(mt, err)
		assert.True(mt, notification.IsActive)
		assert.False(mt, notification.IsSent)
		assert.False(mt, notification.UpdatedAt.IsZero())
	})

	mt.Run("Upsert Error", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 91, Message: "shutting down"}))

		// Act
		err := repo.Upsert(t.Context(), &models.CartNotification{UserID: "user-1"})

		// Assert
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "user-1")
	})

	mt.Run("PullProduct Success", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		// Act
		err := repo.PullProduct(t.Context(), "user-1", "p1")

		// Assert
		require.NoError(mt, err)
	})

	mt.Run("DeleteIfEmpty Deleted", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		// Act
		deleted, err := repo.DeleteIfEmpty(t.Context(), "user-1")

		// Assert
		require.NoError(mt, err)
		assert.True(mt, deleted)
	})

	mt.Run("DeleteIfEmpty Kept", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		// Act
		deleted, err := repo.DeleteIfEmpty(t.Context(), "user-1")

		// Assert
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})

	mt.Run("UpdateQuantity Success", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		// Act
		err := repo.UpdateQuantity(t.Context(), "user-1", "p1", 4)

		// Assert
		require.NoError(mt, err)
	})

	mt.Run("FindPending Success", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		pending := models.CartNotification{
			ID:        primitive.NewObjectID(),
			UserID:    "user-1",
			Email:     "jane@example.com",
			UserName:  "Jane Doe",
			IsActive:  true,
			Products:  []models.CartProduct{{ProductID: "p1", Name: "Whey", Price: 1999, Quantity: 2}},
			CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, notificationsNS, mtest.FirstBatch, toDoc(mt.T, pending)))

		// Act
		notifications, err := repo.FindPending(t.Context())

		// Assert
		require.NoError(mt, err)
		require.Len(mt, notifications, 1)
		assert.Equal(mt, pending.ID, notifications[0].ID)
		assert.Equal(mt, "Jane Doe", notifications[0].UserName)
		require.Len(mt, notifications[0].Products, 1)
		assert.Equal(mt, 2, notifications[0].Products[0].Quantity)
	})

	mt.Run("FindPending Empty", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, notificationsNS, mtest.FirstBatch))

		// Act
		notifications, err := repo.FindPending(t.Context())

		// Assert
		require.NoError(mt, err)
		assert.Empty(mt, notifications)
	})

	mt.Run("MarkSent Error", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewCartNotificationRepo(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		// Act
		err := repo.MarkSent(t.Context(), id)

		// Assert
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), id.Hex())
	})
}
