package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductHandler_GetProduct(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	t.Run("Success - Get By Handle", func(t *testing.T) {
		// Arrange
		product := &models.Product{ParsedProduct: models.ParsedProduct{Handle: "whey-protein", Title: "Whey Protein"}}
		mockProductService.On("GetProductByHandle", mock.Anything, "whey-protein").Return(product, nil).Once()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/whey-protein", nil, map[string]string{"handle": "whey-protein"})
		rr := httptest.NewRecorder()

		// Act
		productHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Product
		decodeData(t, decodeResponse(t, rr), &got)
		assert.Equal(t, "Whey Protein", got.Title)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockProductService.On("GetProductByHandle", mock.Anything, "missing").Return(nil, appErrors.NotFoundError("Product not found")).Once()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/missing", nil, map[string]string{"handle": "missing"})
		rr := httptest.NewRecorder()

		// Act
		productHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, appErrors.ErrCodeNotFound, decodeResponse(t, rr).Error.Code)
		mockProductService.AssertExpectations(t)
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	t.Run("Success - Explicit Page", func(t *testing.T) {
		// Arrange
		page := &models.PaginatedResponse{Data: []*models.Product{}, Total: 0, Page: 3, PageSize: 5}
		mockProductService.On("ListProducts", mock.Anything, 3, 5).Return(page, nil).Once()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?page=3&pageSize=5", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Success - Defaults And Clamp", func(t *testing.T) {
		// Arrange
		page := &models.PaginatedResponse{Data: []*models.Product{}, Page: 1, PageSize: 100}
		mockProductService.On("ListProducts", mock.Anything, 1, 100).Return(page, nil).Once()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?page=-2&pageSize=500", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		mockProductService.On("ListProducts", mock.Anything, 1, 20).Return(nil, appErrors.DatabaseError("Failed to list products")).Once()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockProductService.AssertExpectations(t)
	})
}
