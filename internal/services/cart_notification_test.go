package service_test

import (
	"errors"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	emailMocks "github.com/aaravmahajanofficial/supplements-storefront/pkg/sendgrid/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupCartNotificationService(t *testing.T) (service.CartNotificationService, *mocks.CartNotificationRepository, *emailMocks.EmailService) {
	t.Helper()

	repo := mocks.NewCartNotificationRepository(t)
	email := emailMocks.NewEmailService(t)
	svc := service.NewCartNotificationService(repo, email, service.StoreInfo{URL: "https://shop.example.com/", Name: "Muscle Store"})

	return svc, repo, email
}

func TestCartNotificationService_Sync(t *testing.T) {
	claims := &models.Claims{UserID: "user-1", Email: "jane@example.com", Name: " Jane Doe ", Phone: "9999999999"}
	items := []models.CartItem{
		{ID: "p1-Flavor:Chocolate", ProductID: "p1", Name: "Whey", Price: 1999.5, Quantity: 2, Handle: "whey"},
		{ID: "p2", ProductID: "p2", Name: "Creatine", Price: 799, Quantity: 1, Handle: "creatine"},
	}

	t.Run("Success - Upserts Mapped Products", func(t *testing.T) {
		// Arrange
		svc, repo, _ := setupCartNotificationService(t)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(n *models.CartNotification) bool {
			return n.UserID == "user-1" &&
				n.UserName == "Jane Doe" &&
				n.Email == "jane@example.com" &&
				n.Subtotal == 4798 &&
				len(n.Products) == 2 &&
				n.Products[0].ProductID == "p1" &&
				n.Products[0].Quantity == 2
		})).Return(nil).Once()

		// Act
		err := svc.Sync(t.Context(), claims, items)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		svc, repo, _ := setupCartNotificationService(t)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("write conflict")).Once()

		// Act
		err := svc.Sync(t.Context(), claims, items)

		// Assert
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestCartNotificationService_Edit(t *testing.T) {
	item := models.CartItem{ProductID: "p1", Quantity: 3}

	t.Run("Success - Remove Deletes Empty Cart", func(t *testing.T) {
		// Arrange
		svc, repo, _ := setupCartNotificationService(t)
		repo.On("PullProduct", mock.Anything, "user-1", "p1").Return(nil).Once()
		repo.On("DeleteIfEmpty", mock.Anything, "user-1").Return(true, nil).Once()

		// Act
		err := svc.Edit(t.Context(), "user-1", models.EditActionRemove, item)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Success - Update Quantity", func(t *testing.T) {
		// Arrange
		svc, repo, _ := setupCartNotificationService(t)
		repo.On("UpdateQuantity", mock.Anything, "user-1", "p1", 3).Return(nil).Once()

		// Act
		err := svc.Edit(t.Context(), "user-1", models.EditActionUpdateQty, item)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Failure - Unknown Action", func(t *testing.T) {
		// Arrange
		svc, _, _ := setupCartNotificationService(t)

		// Act
		err := svc.Edit(t.Context(), "user-1", models.EditAction("clear"), item)

		// Assert
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}

func TestCartNotificationService_SendAbandoned(t *testing.T) {
	pending := func() []*models.CartNotification {
		return []*models.CartNotification{
			{
				ID:       primitive.NewObjectID(),
				UserID:   "user-1",
				Email:    "jane@example.com",
				UserName: "Jane",
				Products: []models.CartProduct{{
					ProductID: "p1",
					Name:      "Whey <Gold>",
					Price:     1999,
					Quantity:  2,
					Variant:   &models.SelectedVariant{Option1Value: "Chocolate"},
				}},
			},
			{
				ID:     primitive.NewObjectID(),
				UserID: "user-2",
				Email:  "bounce@example.com",
			},
		}
	}

	t.Run("Success - Sends And Skips Failures", func(t *testing.T) {
		// Arrange
		svc, repo, email := setupCartNotificationService(t)
		carts := pending()
		repo.On("FindPending", mock.Anything).Return(carts, nil).Once()
		email.On("Send", mock.Anything, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == "jane@example.com" &&
				req.Subject == "You left items in your cart" &&
				strings.Contains(req.HTMLContent, "Hello Jane,") &&
				strings.Contains(req.HTMLContent, "Whey &lt;Gold&gt;") &&
				strings.Contains(req.HTMLContent, "Chocolate") &&
				strings.Contains(req.HTMLContent, "Qty: 2") &&
				strings.Contains(req.HTMLContent, "https://shop.example.com/cart") &&
				strings.Contains(req.HTMLContent, "Muscle Store")
		})).Return(nil).Once()
		email.On("Send", mock.Anything, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == "bounce@example.com" && strings.Contains(req.HTMLContent, "Hello Valued Customer,")
		})).Return(errors.New("mailbox full")).Once()
		repo.On("MarkSent", mock.Anything, carts[0].ID).Return(nil).Once()

		// Act
		result, err := svc.SendAbandoned(t.Context())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, result.Sent)
	})

	t.Run("Success - Nothing Pending", func(t *testing.T) {
		// Arrange
		svc, repo, _ := setupCartNotificationService(t)
		repo.On("FindPending", mock.Anything).Return([]*models.CartNotification{}, nil).Once()

		// Act
		result, err := svc.SendAbandoned(t.Context())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0, result.Sent)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		svc, repo, _ := setupCartNotificationService(t)
		repo.On("FindPending", mock.Anything).Return(nil, errors.New("timeout")).Once()

		// Act
		result, err := svc.SendAbandoned(t.Context())

		// Assert
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestLocalSyncer(t *testing.T) {
	t.Run("Success - Forwards To Service", func(t *testing.T) {
		// Arrange
		svc, repo, _ := setupCartNotificationService(t)
		syncer := service.LocalSyncer{Service: svc, Claims: &models.Claims{UserID: "user-1"}}
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.CartNotification")).Return(nil).Once()
		repo.On("UpdateQuantity", mock.Anything, "user-1", "p1", 5).Return(nil).Once()

		// Act
		syncErr := syncer.SyncItems(t.Context(), []models.CartItem{{ProductID: "p1", Quantity: 1}})
		editErr := syncer.EditItem(t.Context(), models.EditActionUpdateQty, models.CartItem{ProductID: "p1", Quantity: 5})

		// Assert
		require.NoError(t, syncErr)
		require.NoError(t, editErr)
	})
}
