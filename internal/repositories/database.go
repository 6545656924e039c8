package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ProductsCollection          = "products"
	CartNotificationsCollection = "cartnotifications"
	PromoCodesCollection        = "promocodes"

	connectTimeout = 10 * time.Second
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

type Repository struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func New(cfg *config.Config) (*Repository, ProductRepository, CartNotificationRepository, PromoRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection to make sure DB is reachable
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)

	if err := EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, nil, nil, nil, err
	}

	slog.Info("✅ Successfully connected to MongoDB", slog.String("database", cfg.Mongo.Database))

	return &Repository{Client: client, DB: db}, NewProductRepo(db), NewCartNotificationRepo(db), NewPromoRepo(db), nil
}

// EnsureIndexes creates the unique keys the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := map[string]string{
		ProductsCollection:          "handle",
		CartNotificationsCollection: "userId",
		PromoCodesCollection:        "code",
	}

	for collection, field := range unique {
		_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s.%s index: %w", collection, field, err)
		}
	}

	return nil
}

func (r *Repository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	return r.Client.Disconnect(ctx)
}
