package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository interface {
	FindByHandle(ctx context.Context, handle string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	UpdateByHandle(ctx context.Context, handle string, product *models.ParsedProduct) error
	DeleteAll(ctx context.Context) (int64, error)
	List(ctx context.Context, page, size int) ([]*models.Product, int64, error)
}

type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepo(db *mongo.Database) ProductRepository {
	return &productRepository{collection: db.Collection(ProductsCollection)}
}

func (r *productRepository) FindByHandle(ctx context.Context, handle string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	err := r.collection.FindOne(dbCtx, bson.M{"handle": handle}).Decode(product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("querying product %s: %w", handle, err)
	}

	return product, nil
}

// FindByIDs loads products by hex object id; malformed ids are ignored.
func (r *productRepository) FindByIDs(ctx context.Context, ids []string) ([]*models.Product, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))

	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			objectIDs = append(objectIDs, oid)
		}
	}

	if len(objectIDs) == 0 {
		return []*models.Product{}, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.find(dbCtx, bson.M{"_id": bson.M{"$in": objectIDs}})
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.collection.InsertOne(dbCtx, product)
	if err != nil {
		return fmt.Errorf("inserting product %s: %w", product.Handle, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	return nil
}

// UpdateByHandle overwrites every catalog field of an existing product, title
// through status. The id, handle and createdAt are left as stored.
func (r *productRepository) UpdateByHandle(ctx context.Context, handle string, product *models.ParsedProduct) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":           product.Title,
		"bodyHtml":        product.BodyHTML,
		"vendor":          product.Vendor,
		"productCategory": product.ProductCategory,
		"type":            product.Type,
		"tags":            product.Tags,
		"published":       product.Published,
		"options":         product.Options,
		"variants":        product.Variants,
		"images":          product.Images,
		"seo":             product.SEO,
		"giftCard":        product.GiftCard,
		"status":          product.Status,
		"updatedAt":       time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(dbCtx, bson.M{"handle": handle}, update)
	if err != nil {
		return fmt.Errorf("updating product %s: %w", handle, err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepository) DeleteAll(ctx context.Context) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.collection.DeleteMany(dbCtx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("deleting products: %w", err)
	}

	return result.DeletedCount, nil
}

func (r *productRepository) List(ctx context.Context, page, size int) ([]*models.Product, int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	filter := bson.M{"isDeleted": bson.M{"$ne": true}}

	total, err := r.collection.CountDocuments(dbCtx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	// Offset
	offset := int64((page - 1) * size)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(int64(size))

	products, err := r.find(dbCtx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]*models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	return products, nil
}
