package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

const (
	msgItemAdded     = "Item added to cart."
	msgItemUpdated   = "Item quantity updated."
	msgItemsAdded    = "%d items added to cart."
	msgItemRemoved   = "Item removed."
	msgPromoApplied  = "Promo code applied!"
	defaultSyncLimit = 5 * time.Second
)

var ErrNoStorage = errors.New("cart: storage is required")

// Storage persists the cart document as JSON under a key. cache.Cache satisfies it.
type Storage interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Syncer mirrors cart changes to a remote receiver. Calls are best effort.
type Syncer interface {
	SyncItems(ctx context.Context, items []models.CartItem) error
	EditItem(ctx context.Context, action models.EditAction, item models.CartItem) error
}

type Options struct {
	Storage  Storage
	Syncer   Syncer
	Notifier Notifier
	Logger   *slog.Logger

	// TTL of the persisted document; zero uses the storage default.
	TTL         time.Duration
	SyncTimeout time.Duration
	Shipping    float64
	Taxes       float64

	// InFlight tracks sync goroutines across stores so shutdown can wait for them.
	InFlight *sync.WaitGroup
}

// Store is one shopper's cart. Every mutation is applied to the in-memory
// state, persisted, and then mirrored to the Syncer in the background.
type Store struct {
	mu    sync.Mutex
	key   string
	state models.CartState
	opts  Options
}

// Open loads the cart stored under key, starting from an empty cart on first use.
func Open(ctx context.Context, key string, opts Options) (*Store, error) {
	if opts.Storage == nil {
		return nil, ErrNoStorage
	}

	if opts.Notifier == nil {
		opts.Notifier = LogNotifier{Logger: opts.Logger}
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.SyncTimeout <= 0 {
		opts.SyncTimeout = defaultSyncLimit
	}

	if opts.InFlight == nil {
		opts.InFlight = &sync.WaitGroup{}
	}

	state := NewState()

	found, err := opts.Storage.Get(ctx, key, &state)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", key, err)
	}

	if !found {
		state = NewState()
	}

	return &Store{key: key, state: Clone(state), opts: opts}, nil
}

// State returns a copy of the current cart.
func (s *Store) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Clone(s.state)
}

// Summary derives the order summary from the current cart.
func (s *Store) Summary() models.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Summarize(s.state, s.opts.Shipping, s.opts.Taxes)
}

// Wait blocks until every sync started through this store's InFlight group finishes.
func (s *Store) Wait() {
	s.opts.InFlight.Wait()
}

func (s *Store) AddItem(ctx context.Context, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, merged := AddItems(s.state, item)

	reason, err := s.commitItems(ctx, next)
	if err != nil {
		return err
	}

	if merged > 0 {
		s.opts.Notifier.Success(msgItemUpdated)
	} else {
		s.opts.Notifier.Success(msgItemAdded)
	}

	s.notifyEviction(reason)
	s.syncItems(ctx)

	return nil
}

func (s *Store) AddMultipleToCart(ctx context.Context, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, _ := AddItems(s.state, items...)

	reason, err := s.commitItems(ctx, next)
	if err != nil {
		return err
	}

	s.opts.Notifier.Success(fmt.Sprintf(msgItemsAdded, len(items)))
	s.notifyEviction(reason)
	s.syncItems(ctx)

	return nil
}

// RemoveItem drops a line. Unknown ids are ignored.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, id)
}

func (s *Store) removeLocked(ctx context.Context, id string) error {
	next, removed := RemoveItem(s.state, id)
	if removed == nil {
		return nil
	}

	reason, err := s.commitItems(ctx, next)
	if err != nil {
		return err
	}

	s.opts.Notifier.Success(msgItemRemoved)
	s.notifyEviction(reason)
	s.editItem(ctx, models.EditActionRemove, *removed)

	return nil
}

// UpdateItemQuantity sets a line's quantity; quantity <= 0 removes it. Unknown ids are ignored.
func (s *Store) UpdateItemQuantity(ctx context.Context, id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, id)
	}

	next, updated := UpdateQuantity(s.state, id, quantity)
	if updated == nil {
		return nil
	}

	reason, err := s.commitItems(ctx, next)
	if err != nil {
		return err
	}

	s.opts.Notifier.Success(msgItemUpdated)
	s.notifyEviction(reason)
	s.editItem(ctx, models.EditActionUpdateQty, *updated)

	return nil
}

// RemoveAll resets the cart and the checkout session.
func (s *Store) RemoveAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, Reset(s.state))
}

func (s *Store) ApplyPromoCode(ctx context.Context, promo models.PromoCode, applicableIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ApplyPromo(s.state, promo, applicableIDs)
	summary := Summarize(next, s.opts.Shipping, s.opts.Taxes)
	next.OrderSummary = &summary

	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.opts.Notifier.Success(msgPromoApplied)

	return nil
}

func (s *Store) RemovePromoCode(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ClearPromo(s.state)
	if len(next.Items) > 0 {
		summary := Summarize(next, s.opts.Shipping, s.opts.Taxes)
		next.OrderSummary = &summary
	}

	return s.commit(ctx, next)
}

// ValidatePromoCode re-checks the applied code and evicts it when it no longer qualifies.
func (s *Store) ValidatePromoCode(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, reason := ValidatePromo(s.state)
	if reason == "" {
		return nil
	}

	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.notifyEviction(reason)

	return nil
}

func (s *Store) SetOrderDetails(ctx context.Context, details *models.OrderDetails) error {
	return s.set(ctx, func(state *models.CartState) { state.OrderDetails = details })
}

func (s *Store) SetUserInfo(ctx context.Context, info *models.UserInfo) error {
	return s.set(ctx, func(state *models.CartState) { state.UserInfo = info })
}

func (s *Store) SetOrderSummary(ctx context.Context, summary *models.OrderSummary) error {
	return s.set(ctx, func(state *models.CartState) { state.OrderSummary = summary })
}

func (s *Store) SetOrderSuccess(ctx context.Context, success bool) error {
	return s.set(ctx, func(state *models.CartState) { state.OrderSuccess = success })
}

func (s *Store) SetPaymentMethod(ctx context.Context, method string) error {
	return s.set(ctx, func(state *models.CartState) { state.PaymentMethod = &method })
}

func (s *Store) set(ctx context.Context, apply func(*models.CartState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Clone(s.state)
	apply(&next)

	return s.commit(ctx, next)
}

// commitItems re-validates the promo code and refreshes the summary after the
// item list changed, then persists.
func (s *Store) commitItems(ctx context.Context, next models.CartState) (string, error) {
	next, reason := ValidatePromo(next)

	summary := Summarize(next, s.opts.Shipping, s.opts.Taxes)
	next.OrderSummary = &summary

	if err := s.commit(ctx, next); err != nil {
		return "", err
	}

	return reason, nil
}

func (s *Store) commit(ctx context.Context, next models.CartState) error {
	if err := s.opts.Storage.Set(ctx, s.key, next, s.opts.TTL); err != nil {
		return fmt.Errorf("failed to persist cart %s: %w", s.key, err)
	}

	s.state = next

	return nil
}

func (s *Store) notifyEviction(reason string) {
	if reason == "" {
		return
	}

	s.opts.Logger.Info("Promo code evicted", slog.String("reason", reason))
	s.opts.Notifier.Error(reason)
}

func (s *Store) syncItems(ctx context.Context) {
	items := Clone(s.state).Items

	s.dispatch(ctx, "sync", func(ctx context.Context) error {
		return s.opts.Syncer.SyncItems(ctx, items)
	})
}

func (s *Store) editItem(ctx context.Context, action models.EditAction, item models.CartItem) {
	s.dispatch(ctx, string(action), func(ctx context.Context) error {
		return s.opts.Syncer.EditItem(ctx, action, item)
	})
}

// dispatch runs fn in the background on a context detached from the caller's
// cancellation. Failures are logged and counted, never returned or retried.
func (s *Store) dispatch(ctx context.Context, action string, fn func(ctx context.Context) error) {
	if s.opts.Syncer == nil {
		return
	}

	syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.SyncTimeout)
	logger := s.opts.Logger
	itemCount := len(s.state.Items)

	s.opts.InFlight.Add(1)

	go func() {
		defer s.opts.InFlight.Done()
		defer cancel()

		if err := fn(syncCtx); err != nil {
			metrics.CartSyncFailures.WithLabelValues(action).Inc()
			logger.Warn("Failed to sync cart",
				slog.String("action", action),
				slog.Int("items", itemCount),
				slog.String("error", err.Error()))
		}
	}()
}
