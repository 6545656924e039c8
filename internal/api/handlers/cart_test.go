package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/testutils"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return resp
}

// decodeData re-marshals the envelope's data into dest.
func decodeData(t *testing.T, resp response.APIResponse, dest any) {
	t.Helper()

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dest))
}

func shopperFor(userID string) any {
	return mock.MatchedBy(func(s models.Shopper) bool {
		return s.UserID() == userID && s.Token == testutils.TestToken
	})
}

func sampleCartResponse() *models.CartResponse {
	return &models.CartResponse{
		Cart: &models.CartState{
			Items:      []models.CartItem{{ID: "p1", ProductID: "p1", Name: "Whey", Price: 2000, Quantity: 1, Handle: "whey"}},
			TotalItems: 1,
		},
		Summary:       models.OrderSummary{Subtotal: 2000, Total: 2000},
		Notifications: []models.Toast{{Level: "success", Message: "Item added to cart."}},
	}
}

func TestCartHandler_GetCart(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Get Cart", func(t *testing.T) {
		// Arrange
		mockCartService.On("GetCart", mock.Anything, shopperFor("user-1")).Return(sampleCartResponse(), nil).Once()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse(t, rr)
		assert.True(t, resp.Success)

		var cart models.CartResponse
		decodeData(t, resp, &cart)
		assert.Equal(t, 1, cart.Cart.TotalItems)
		assert.Equal(t, 2000.0, cart.Summary.Total)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/cart", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		resp := decodeResponse(t, rr)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, resp.Error.Code)
		mockCartService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Add Item", func(t *testing.T) {
		// Arrange
		body := models.AddCartItemRequest{ProductID: "p1", Name: "Whey", Price: 2000, Handle: "whey"}
		mockCartService.On("AddItem", mock.Anything, shopperFor("user-1"), &body).Return(sampleCartResponse(), nil).Once()
		raw, _ := json.Marshal(body)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(raw), "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var cart models.CartResponse
		decodeData(t, decodeResponse(t, rr), &cart)
		assert.Equal(t, "Item added to cart.", cart.Notifications[0].Message)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"name":"Whey"}`), "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "Field ProductID is required")
		mockCartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", strings.NewReader(""), "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, decodeResponse(t, rr).Error.Code)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		body := models.AddCartItemRequest{ProductID: "p2", Name: "Creatine", Price: 799, Handle: "creatine"}
		mockCartService.On("AddItem", mock.Anything, shopperFor("user-1"), &body).
			Return(nil, appErrors.DatabaseError("Failed to save cart")).Once()
		raw, _ := json.Marshal(body)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(raw), "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Failed to save cart", decodeResponse(t, rr).Error.Message)
		mockCartService.AssertExpectations(t)
	})
}

func TestCartHandler_UpdateItemQuantity(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Zero Quantity Is Forwarded", func(t *testing.T) {
		// Arrange
		mockCartService.On("UpdateItemQuantity", mock.Anything, shopperFor("user-1"), "p1-Flavor:Chocolate", 0).
			Return(&models.CartResponse{Cart: &models.CartState{Items: []models.CartItem{}}}, nil).Once()
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/cart/items/p1-Flavor:Chocolate",
			strings.NewReader(`{"quantity":0}`), "user-1", map[string]string{"id": "p1-Flavor:Chocolate"})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateItemQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Quantity", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/cart/items/p1",
			strings.NewReader(`{}`), "user-1", map[string]string{"id": "p1"})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateItemQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeResponse(t, rr).Error.Code)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Remove Item", func(t *testing.T) {
		// Arrange
		mockCartService.On("RemoveItem", mock.Anything, shopperFor("user-1"), "p1").
			Return(&models.CartResponse{Cart: &models.CartState{Items: []models.CartItem{}}}, nil).Once()
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart/items/p1", nil, "user-1", map[string]string{"id": "p1"})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Success - Remove All", func(t *testing.T) {
		// Arrange
		mockCartService.On("RemoveAll", mock.Anything, shopperFor("user-1")).
			Return(&models.CartResponse{Cart: &models.CartState{Items: []models.CartItem{}}}, nil).Once()
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.RemoveAll().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestCartHandler_PromoCode(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Apply", func(t *testing.T) {
		// Arrange
		mockCartService.On("ApplyPromoCode", mock.Anything, shopperFor("user-1"), "SAVE10").Return(sampleCartResponse(), nil).Once()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/promo", strings.NewReader(`{"code":"SAVE10"}`), "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.ApplyPromoCode().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Expired Code", func(t *testing.T) {
		// Arrange
		mockCartService.On("ApplyPromoCode", mock.Anything, shopperFor("user-1"), "OLD").
			Return(nil, appErrors.GoneError("Promo code has expired")).Once()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/promo", strings.NewReader(`{"code":"OLD"}`), "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.ApplyPromoCode().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusGone, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, appErrors.ErrCodeGone, resp.Error.Code)
		assert.Equal(t, "Promo code has expired", resp.Error.Message)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Success - Remove", func(t *testing.T) {
		// Arrange
		mockCartService.On("RemovePromoCode", mock.Anything, shopperFor("user-1")).Return(sampleCartResponse(), nil).Once()
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart/promo", nil, "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.RemovePromoCode().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestCartHandler_UpdateCheckout(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Payment Method", func(t *testing.T) {
		// Arrange
		mockCartService.On("UpdateCheckout", mock.Anything, shopperFor("user-1"), mock.MatchedBy(func(r *models.CheckoutRequest) bool {
			return r.PaymentMethod != nil && *r.PaymentMethod == "cod" && r.UserInfo == nil
		})).Return(sampleCartResponse(), nil).Once()
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/cart/checkout", strings.NewReader(`{"paymentMethod":"cod"}`), "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateCheckout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid User Info", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/cart/checkout",
			strings.NewReader(`{"userInfo":{"name":"Jane","email":"not-an-email"}}`), "user-1", nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateCheckout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeResponse(t, rr).Error.Code)
	})
}
