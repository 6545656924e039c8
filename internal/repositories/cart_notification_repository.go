package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartNotificationRepository keeps one document per user mirroring their cart.
type CartNotificationRepository interface {
	Upsert(ctx context.Context, notification *models.CartNotification) error
	PullProduct(ctx context.Context, userID, productID string) error
	DeleteIfEmpty(ctx context.Context, userID string) (bool, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error
	FindPending(ctx context.Context) ([]*models.CartNotification, error)
	MarkSent(ctx context.Context, id primitive.ObjectID) error
}

type cartNotificationRepository struct {
	collection *mongo.Collection
}

func NewCartNotificationRepo(db *mongo.Database) CartNotificationRepository {
	return &cartNotificationRepository{collection: db.Collection(CartNotificationsCollection)}
}

// Upsert replaces the user's product list and re-arms the reminder.
func (r *cartNotificationRepository) Upsert(ctx context.Context, notification *models.CartNotification) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"email":       notification.Email,
			"userName":    notification.UserName,
			"phoneNumber": notification.PhoneNumber,
			"products":    notification.Products,
			"subtotal":    notification.Subtotal,
			"isActive":    true,
			"isSent":      false,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	_, err := r.collection.UpdateOne(dbCtx, bson.M{"userId": notification.UserID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upserting cart notification for %s: %w", notification.UserID, err)
	}

	notification.IsActive = true
	notification.IsSent = false
	notification.UpdatedAt = now

	return nil
}

func (r *cartNotificationRepository) PullProduct(ctx context.Context, userID, productID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"products": bson.M{"productId": productID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	if _, err := r.collection.UpdateOne(dbCtx, bson.M{"userId": userID}, update); err != nil {
		return fmt.Errorf("removing product %s for %s: %w", productID, userID, err)
	}

	return nil
}

// DeleteIfEmpty drops the user's document once it holds no products.
func (r *cartNotificationRepository) DeleteIfEmpty(ctx context.Context, userID string) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"$or": bson.A{
			bson.M{"products": bson.M{"$size": 0}},
			bson.M{"products": bson.M{"$exists": false}},
		},
	}

	result, err := r.collection.DeleteOne(dbCtx, filter)
	if err != nil {
		return false, fmt.Errorf("deleting empty cart notification for %s: %w", userID, err)
	}

	return result.DeletedCount > 0, nil
}

func (r *cartNotificationRepository) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	filter := bson.M{"userId": userID, "products.productId": productID}
	update := bson.M{"$set": bson.M{
		"products.$.quantity": quantity,
		"updatedAt":           time.Now().UTC(),
	}}

	if _, err := r.collection.UpdateOne(dbCtx, filter, update); err != nil {
		return fmt.Errorf("updating quantity of %s for %s: %w", productID, userID, err)
	}

	return nil
}

// FindPending lists carts that are still active and have not been emailed.
func (r *cartNotificationRepository) FindPending(ctx context.Context) ([]*models.CartNotification, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(dbCtx, bson.M{"isSent": false, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("querying pending cart notifications: %w", err)
	}
	defer cursor.Close(dbCtx)

	notifications := []*models.CartNotification{}
	if err := cursor.All(dbCtx, &notifications); err != nil {
		return nil, fmt.Errorf("decoding cart notifications: %w", err)
	}

	return notifications, nil
}

func (r *cartNotificationRepository) MarkSent(ctx context.Context, id primitive.ObjectID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"isSent":    true,
		"isActive":  false,
		"updatedAt": time.Now().UTC(),
	}}

	if _, err := r.collection.UpdateOne(dbCtx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("marking cart notification %s sent: %w", id.Hex(), err)
	}

	return nil
}
