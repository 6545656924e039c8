package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
)

const productCacheTTL = 10 * time.Minute

type ProductService interface {
	GetProductByHandle(ctx context.Context, handle string) (*models.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) (*models.PaginatedResponse, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

// NewProductService serves the catalog. c may be nil, which disables caching.
func NewProductService(repo repository.ProductRepository, c cache.Cache) ProductService {
	return &productService{repo: repo, cache: c}
}

func (s *productService) GetProductByHandle(ctx context.Context, handle string) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)
	key := cache.Key(cache.ProductKeyPrefix, handle)

	if s.cache != nil {
		var cached models.Product

		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn("Product cache read failed", slog.String("handle", handle), slog.String("error", err.Error()))
		} else if found {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByHandle(ctx, handle)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.NotFoundError("Product not found")
	}

	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product, productCacheTTL); err != nil {
			logger.Warn("Product cache write failed", slog.String("handle", handle), slog.String("error", err.Error()))
		}
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, page, pageSize int) (*models.PaginatedResponse, error) {
	products, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return models.NewPage(products, int(total), page, pageSize), nil
}
