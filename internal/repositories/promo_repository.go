package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PromoRepository interface {
	FindByCode(ctx context.Context, code string) (*models.StoredPromoCode, error)
}

type promoRepository struct {
	collection *mongo.Collection
}

func NewPromoRepo(db *mongo.Database) PromoRepository {
	return &promoRepository{collection: db.Collection(PromoCodesCollection)}
}

// FindByCode looks the code up case-insensitively; codes are stored upper-case.
func (r *promoRepository) FindByCode(ctx context.Context, code string) (*models.StoredPromoCode, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	code = strings.ToUpper(strings.TrimSpace(code))
	promo := &models.StoredPromoCode{}

	err := r.collection.FindOne(dbCtx, bson.M{"code": code}).Decode(promo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("querying promo code %s: %w", code, err)
	}

	return promo, nil
}
