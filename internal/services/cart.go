package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cart"
	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/shopspring/decimal"
)

// SyncerFactory builds the syncer that mirrors one shopper's cart. It may return nil to disable sync.
type SyncerFactory func(shopper models.Shopper) cart.Syncer

type CartOptions struct {
	TTL         time.Duration
	SyncTimeout time.Duration
	Shipping    float64
	Taxes       float64
	// PromoLimiter caps promo code attempts per shopper. Nil disables the limit.
	PromoLimiter repository.RateLimitRepository
}

type CartService interface {
	GetCart(ctx context.Context, shopper models.Shopper) (*models.CartResponse, error)
	AddItem(ctx context.Context, shopper models.Shopper, req *models.AddCartItemRequest) (*models.CartResponse, error)
	AddItems(ctx context.Context, shopper models.Shopper, req *models.AddCartItemsRequest) (*models.CartResponse, error)
	UpdateItemQuantity(ctx context.Context, shopper models.Shopper, itemID string, quantity int) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, shopper models.Shopper, itemID string) (*models.CartResponse, error)
	RemoveAll(ctx context.Context, shopper models.Shopper) (*models.CartResponse, error)
	ApplyPromoCode(ctx context.Context, shopper models.Shopper, code string) (*models.CartResponse, error)
	RemovePromoCode(ctx context.Context, shopper models.Shopper) (*models.CartResponse, error)
	UpdateCheckout(ctx context.Context, shopper models.Shopper, req *models.CheckoutRequest) (*models.CartResponse, error)
	// Wait blocks until background cart syncs have finished.
	Wait()
}

type cartService struct {
	storage  cart.Storage
	promos   repository.PromoRepository
	products repository.ProductRepository
	syncers  SyncerFactory
	opts     CartOptions
	inFlight sync.WaitGroup
	locks    keyedLocker
	now      func() time.Time
}

func NewCartService(storage cart.Storage, promos repository.PromoRepository, products repository.ProductRepository, syncers SyncerFactory, opts CartOptions) CartService {
	return &cartService{
		storage:  storage,
		promos:   promos,
		products: products,
		syncers:  syncers,
		opts:     opts,
		now:      time.Now,
	}
}

func cartKey(userID string) string {
	return cache.Key(cache.CartStorageKeyPrefix, userID)
}

// lockCart holds the shopper's cart until the returned func runs, so each
// read-modify-write sees the previous one's result.
func (s *cartService) lockCart(ctx context.Context, shopper models.Shopper) (func(), error) {
	if shopper.UserID() == "" {
		return nil, appErrors.UnauthorizedError("Authentication required")
	}

	unlock, err := s.locks.lock(ctx, cartKey(shopper.UserID()))
	if err != nil {
		return nil, appErrors.InternalError("Cart is busy, please retry").WithError(err)
	}

	return unlock, nil
}

func (s *cartService) open(ctx context.Context, shopper models.Shopper) (*cart.Store, *cart.Toasts, error) {
	var syncer cart.Syncer
	if s.syncers != nil {
		syncer = s.syncers(shopper)
	}

	toasts := &cart.Toasts{}

	store, err := cart.Open(ctx, cartKey(shopper.UserID()), cart.Options{
		Storage:     s.storage,
		Syncer:      syncer,
		Notifier:    toasts,
		Logger:      middleware.LoggerFromContext(ctx),
		TTL:         s.opts.TTL,
		SyncTimeout: s.opts.SyncTimeout,
		Shipping:    s.opts.Shipping,
		Taxes:       s.opts.Taxes,
		InFlight:    &s.inFlight,
	})
	if err != nil {
		return nil, nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return store, toasts, nil
}

// mutate opens the shopper's cart under its lock, applies fn and renders the result.
func (s *cartService) mutate(ctx context.Context, shopper models.Shopper, operation string, fn func(store *cart.Store) error) (*models.CartResponse, error) {
	unlock, err := s.lockCart(ctx, shopper)
	if err != nil {
		return nil, err
	}
	defer unlock()

	store, toasts, err := s.open(ctx, shopper)
	if err != nil {
		return nil, err
	}

	if err := fn(store); err != nil {
		if appErr, ok := appErrors.IsAppError(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("Failed to save cart").WithError(err)
	}

	metrics.CartOperations.WithLabelValues(operation).Inc()

	return render(store, toasts), nil
}

func render(store *cart.Store, toasts *cart.Toasts) *models.CartResponse {
	state := store.State()

	return &models.CartResponse{
		Cart:          &state,
		Summary:       store.Summary(),
		Notifications: toasts.List(),
	}
}

// GetCart returns the cart, evicting a promo code that no longer qualifies.
func (s *cartService) GetCart(ctx context.Context, shopper models.Shopper) (*models.CartResponse, error) {
	unlock, err := s.lockCart(ctx, shopper)
	if err != nil {
		return nil, err
	}
	defer unlock()

	store, toasts, err := s.open(ctx, shopper)
	if err != nil {
		return nil, err
	}

	if err := store.ValidatePromoCode(ctx); err != nil {
		return nil, appErrors.DatabaseError("Failed to save cart").WithError(err)
	}

	return render(store, toasts), nil
}

func (s *cartService) AddItem(ctx context.Context, shopper models.Shopper, req *models.AddCartItemRequest) (*models.CartResponse, error) {
	items := s.fillCategories(ctx, []models.CartItem{toCartItem(req)})

	return s.mutate(ctx, shopper, "add_item", func(store *cart.Store) error {
		return store.AddItem(ctx, items[0])
	})
}

func (s *cartService) AddItems(ctx context.Context, shopper models.Shopper, req *models.AddCartItemsRequest) (*models.CartResponse, error) {
	items := make([]models.CartItem, 0, len(req.Items))
	for i := range req.Items {
		items = append(items, toCartItem(&req.Items[i]))
	}

	items = s.fillCategories(ctx, items)

	return s.mutate(ctx, shopper, "add_items", func(store *cart.Store) error {
		return store.AddMultipleToCart(ctx, items)
	})
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, shopper models.Shopper, itemID string, quantity int) (*models.CartResponse, error) {
	return s.mutate(ctx, shopper, "update_quantity", func(store *cart.Store) error {
		return store.UpdateItemQuantity(ctx, itemID, quantity)
	})
}

func (s *cartService) RemoveItem(ctx context.Context, shopper models.Shopper, itemID string) (*models.CartResponse, error) {
	return s.mutate(ctx, shopper, "remove_item", func(store *cart.Store) error {
		return store.RemoveItem(ctx, itemID)
	})
}

func (s *cartService) RemoveAll(ctx context.Context, shopper models.Shopper) (*models.CartResponse, error) {
	return s.mutate(ctx, shopper, "remove_all", func(store *cart.Store) error {
		return store.RemoveAll(ctx)
	})
}

// ApplyPromoCode looks the code up and applies it when the cart qualifies.
func (s *cartService) ApplyPromoCode(ctx context.Context, shopper models.Shopper, code string) (*models.CartResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	return s.mutate(ctx, shopper, "apply_promo", func(store *cart.Store) error {
		if err := s.checkPromoRate(ctx, shopper.UserID()); err != nil {
			return err
		}

		items := store.State().Items
		if len(items) == 0 {
			return appErrors.BadRequestError("Promo code and cart items are required")
		}

		stored, err := s.promos.FindByCode(ctx, code)
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Invalid or inactive promo code")
		}

		if err != nil {
			return appErrors.DatabaseError("Failed to look up promo code").WithError(err)
		}

		if err := s.checkPromo(stored, items); err != nil {
			logger.Info("Promo code rejected", slog.String("code", stored.Code), slog.String("reason", err.Message))

			return err
		}

		ids := applicableProductIDs(stored, items)
		if stored.AppliesTo != models.PromoScopeAll && stored.AppliesTo != "" && len(ids) == 0 {
			return appErrors.BadRequestError("Promo code not applicable to items in cart")
		}

		return store.ApplyPromoCode(ctx, *stored.ToPromoCode(), ids)
	})
}

func (s *cartService) checkPromoRate(ctx context.Context, userID string) error {
	if s.opts.PromoLimiter == nil {
		return nil
	}

	allowed, _, retryAfter, err := s.opts.PromoLimiter.CheckPromoRateLimit(ctx, userID)
	if err != nil {
		return appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return appErrors.TooManyRequestsError("Too many promo code attempts. Please try again later.").
			WithDetail(fmt.Sprintf("Retry after %d seconds", retryAfter)).
			WithRetryAfter(time.Duration(retryAfter) * time.Second)
	}

	return nil
}

func (s *cartService) checkPromo(promo *models.StoredPromoCode, items []models.CartItem) *appErrors.AppError {
	if !promo.IsActive {
		return appErrors.NotFoundError("Invalid or inactive promo code")
	}

	if promo.ExpiresAt != nil && s.now().After(*promo.ExpiresAt) {
		return appErrors.GoneError("Promo code has expired")
	}

	if promo.UsageLimit != nil && *promo.UsageLimit > 0 && promo.UsageCount >= *promo.UsageLimit {
		return appErrors.GoneError("Promo code usage limit reached")
	}

	if promo.MinOrderAmount > 0 && cart.Subtotal(items) < promo.MinOrderAmount {
		return appErrors.BadRequestError(fmt.Sprintf("Minimum order amount of ₹%s not met", decimal.NewFromFloat(promo.MinOrderAmount).String()))
	}

	return nil
}

// applicableProductIDs lists the product ids of the lines a code applies to.
func applicableProductIDs(promo *models.StoredPromoCode, items []models.CartItem) []string {
	ids := []string{}

	for _, item := range items {
		var match bool

		switch promo.AppliesTo {
		case models.PromoScopeProducts:
			match = slices.Contains(promo.ProductIDs, item.ProductID) || slices.Contains(promo.ProductIDs, item.ID)
		case models.PromoScopeCategories:
			match = item.Category != "" && slices.Contains(promo.CategoryNames, item.Category)
		default:
			match = true
		}

		if match && !slices.Contains(ids, item.ProductID) {
			ids = append(ids, item.ProductID)
		}
	}

	return ids
}

func (s *cartService) RemovePromoCode(ctx context.Context, shopper models.Shopper) (*models.CartResponse, error) {
	return s.mutate(ctx, shopper, "remove_promo", func(store *cart.Store) error {
		return store.RemovePromoCode(ctx)
	})
}

// UpdateCheckout applies the checkout-session fields present in req.
func (s *cartService) UpdateCheckout(ctx context.Context, shopper models.Shopper, req *models.CheckoutRequest) (*models.CartResponse, error) {
	return s.mutate(ctx, shopper, "checkout", func(store *cart.Store) error {
		if req.UserInfo != nil {
			if err := store.SetUserInfo(ctx, req.UserInfo); err != nil {
				return err
			}
		}

		if req.OrderDetails != nil {
			if err := store.SetOrderDetails(ctx, req.OrderDetails); err != nil {
				return err
			}
		}

		if req.OrderSummary != nil {
			if err := store.SetOrderSummary(ctx, req.OrderSummary); err != nil {
				return err
			}
		}

		if req.PaymentMethod != nil {
			if err := store.SetPaymentMethod(ctx, *req.PaymentMethod); err != nil {
				return err
			}
		}

		if req.OrderSuccess != nil {
			return store.SetOrderSuccess(ctx, *req.OrderSuccess)
		}

		return nil
	})
}

func (s *cartService) Wait() {
	s.inFlight.Wait()
}

// fillCategories copies the catalog category onto lines that arrive without
// one, so category-scoped promo codes can match them. Lookup failures leave
// the lines unchanged.
func (s *cartService) fillCategories(ctx context.Context, items []models.CartItem) []models.CartItem {
	if s.products == nil {
		return items
	}

	var missing []string

	for _, item := range items {
		if item.Category == "" {
			missing = append(missing, item.ProductID)
		}
	}

	if len(missing) == 0 {
		return items
	}

	products, err := s.products.FindByIDs(ctx, missing)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to look up product categories", slog.String("error", err.Error()))

		return items
	}

	categories := make(map[string]string, len(products))
	for _, p := range products {
		categories[p.ID.Hex()] = p.ProductCategory
	}

	for i := range items {
		if items[i].Category == "" {
			items[i].Category = categories[items[i].ProductID]
		}
	}

	return items
}

func toCartItem(req *models.AddCartItemRequest) models.CartItem {
	return models.CartItem{
		ProductID:      req.ProductID,
		Name:           req.Name,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		Variant:        req.Variant,
		Variants:       req.Variants,
		CompareAtPrice: req.CompareAtPrice,
		Handle:         req.Handle,
		Category:       req.Category,
	}
}
