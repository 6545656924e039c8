package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cart"
	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/sendgrid"
	"golang.org/x/sync/errgroup"
)

const (
	abandonedCartSubject = "You left items in your cart"
	reminderConcurrency  = 4
)

type StoreInfo struct {
	URL  string
	Name string
}

// CartNotificationService receives cart syncs and sends abandoned-cart reminders.
type CartNotificationService interface {
	Sync(ctx context.Context, claims *models.Claims, items []models.CartItem) error
	Edit(ctx context.Context, userID string, action models.EditAction, item models.CartItem) error
	SendAbandoned(ctx context.Context) (*models.AbandonedCartsResult, error)
}

type cartNotificationService struct {
	repo         repository.CartNotificationRepository
	emailService sendgrid.EmailService
	store        StoreInfo
}

func NewCartNotificationService(repo repository.CartNotificationRepository, emailService sendgrid.EmailService, store StoreInfo) CartNotificationService {
	return &cartNotificationService{repo: repo, emailService: emailService, store: store}
}

// Sync replaces the user's stored cart with items and re-arms the reminder.
func (s *cartNotificationService) Sync(ctx context.Context, claims *models.Claims, items []models.CartItem) error {
	products := make([]models.CartProduct, 0, len(items))

	for _, item := range items {
		products = append(products, models.CartProduct{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
			Handle:    item.Handle,
			Variant:   item.Variant,
		})
	}

	notification := &models.CartNotification{
		UserID:      claims.UserID,
		Email:       claims.Email,
		UserName:    strings.TrimSpace(claims.Name),
		PhoneNumber: claims.Phone,
		Subtotal:    cart.Subtotal(items),
		Products:    products,
	}

	if err := s.repo.Upsert(ctx, notification); err != nil {
		return appErrors.DatabaseError("Failed to sync cart").WithError(err)
	}

	return nil
}

func (s *cartNotificationService) Edit(ctx context.Context, userID string, action models.EditAction, item models.CartItem) error {
	switch action {
	case models.EditActionRemove:
		if err := s.repo.PullProduct(ctx, userID, item.ProductID); err != nil {
			return appErrors.DatabaseError("Failed to update cart").WithError(err)
		}

		if _, err := s.repo.DeleteIfEmpty(ctx, userID); err != nil {
			return appErrors.DatabaseError("Failed to update cart").WithError(err)
		}
	case models.EditActionUpdateQty:
		if err := s.repo.UpdateQuantity(ctx, userID, item.ProductID, item.Quantity); err != nil {
			return appErrors.DatabaseError("Failed to update cart").WithError(err)
		}
	default:
		return appErrors.ValidationError(fmt.Sprintf("Unknown cart action %q", action))
	}

	return nil
}

// SendAbandoned emails every active cart that has not been reminded yet, at
// most reminderConcurrency at a time. A failed email is logged and the cart
// stays pending for the next run.
func (s *cartNotificationService) SendAbandoned(ctx context.Context) (*models.AbandonedCartsResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	pending, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load abandoned carts").WithError(err)
	}

	var sent atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reminderConcurrency)

	for _, notification := range pending {
		g.Go(func() error {
			html, err := s.renderReminder(notification)
			if err != nil {
				return appErrors.InternalError("Failed to render reminder email").WithError(err)
			}

			req := &models.EmailNotificationRequest{
				To:          notification.Email,
				Subject:     abandonedCartSubject,
				HTMLContent: html,
			}

			if err := s.emailService.Send(gctx, req); err != nil {
				logger.Warn("Failed to send abandoned cart email", slog.String("userId", notification.UserID), slog.String("error", err.Error()))

				return nil
			}

			if err := s.repo.MarkSent(gctx, notification.ID); err != nil {
				logger.Error("Abandoned cart email sent but failed to mark it", slog.String("userId", notification.UserID), slog.String("error", err.Error()))

				return nil
			}

			sent.Add(1)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("Abandoned cart reminders sent", slog.Int("pending", len(pending)), slog.Int64("sent", sent.Load()))

	return &models.AbandonedCartsResult{Sent: int(sent.Load())}, nil
}

type reminderData struct {
	UserName  string
	Products  []models.CartProduct
	CartURL   string
	StoreName string
}

func (s *cartNotificationService) renderReminder(notification *models.CartNotification) (string, error) {
	name := notification.UserName
	if name == "" {
		name = "Valued Customer"
	}

	var buf bytes.Buffer

	err := reminderTemplate.Execute(&buf, reminderData{
		UserName:  name,
		Products:  notification.Products,
		CartURL:   strings.TrimRight(s.store.URL, "/") + "/cart",
		StoreName: s.store.Name,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`<div style="max-width:640px;margin:auto;font-family:Arial,Helvetica,sans-serif;background:#f5f7ff;border-radius:18px;overflow:hidden">
  <div style="background:linear-gradient(135deg,#1b198f,#4f46e5);padding:35px;text-align:center;color:white">
    <h1 style="margin:0;font-size:32px">Your Cart Is Waiting</h1>
    <p style="margin:12px 0 0;font-size:16px">Complete your purchase before your items sell out</p>
  </div>
  <div style="padding:30px;color:#1f2933">
    <h2 style="margin-top:0">Hello {{.UserName}},</h2>
    <p style="font-size:15px;line-height:1.7">You were just one step away from completing your order. These products are still in your cart, but availability is limited.</p>
    <div style="margin:25px 0">
      {{- range .Products}}
      <div style="display:flex;align-items:center;background:white;border-radius:14px;padding:14px;margin-bottom:12px">
        <img src="{{.ImageURL}}" style="width:70px;height:70px;border-radius:10px;object-fit:cover;margin-right:14px"/>
        <div style="flex:1">
          <div style="font-size:15px;font-weight:600">{{.Name}}</div>
          <div style="font-size:13px;color:#6b7280">{{with .Variant}}{{.Option1Value}}{{end}}</div>
          <div style="font-size:13px;color:#6b7280">Qty: {{.Quantity}}</div>
        </div>
        <div style="font-weight:600">₹{{.Price}}</div>
      </div>
      {{- end}}
    </div>
    <div style="text-align:center;margin:35px 0">
      <a href="{{.CartURL}}" style="background:#1b198f;color:white;text-decoration:none;padding:16px 40px;border-radius:40px;font-size:16px;font-weight:600;display:inline-block">Complete My Order</a>
    </div>
  </div>
  <div style="background:#0f172a;color:#c7d2fe;padding:18px;text-align:center;font-size:12px">
    You are receiving this email because you added products to your cart at {{.StoreName}}.
    <br/>Need help? Contact support anytime.
  </div>
</div>
`))

// LocalSyncer mirrors a shopper's cart into the notification store in-process.
type LocalSyncer struct {
	Service CartNotificationService
	Claims  *models.Claims
}

func (l LocalSyncer) SyncItems(ctx context.Context, items []models.CartItem) error {
	return l.Service.Sync(ctx, l.Claims, items)
}

func (l LocalSyncer) EditItem(ctx context.Context, action models.EditAction, item models.CartItem) error {
	return l.Service.Edit(ctx, l.Claims.UserID, action, item)
}
