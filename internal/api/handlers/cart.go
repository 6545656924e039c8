package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// shopper resolves the caller or writes a 401. The returned logger carries the user id.
func shopper(w http.ResponseWriter, r *http.Request) (models.Shopper, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	s, ok := middleware.ShopperFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized cart access attempt")
		response.Error(w, errors.UnauthorizedError("Authentication required"))

		return models.Shopper{}, logger, false
	}

	return s, logger.With(slog.String("userID", s.UserID())), true
}

// GetCart godoc
//	@Summary		Get the shopper's cart
//	@Description	Loads the persisted cart, revalidates any applied promo code and returns the order summary.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartResponse
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), s)
		if err != nil {
			logger.Error("Failed to fetch cart", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add an item
//	@Description	Adds one unit of a product variant, merging with an existing line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body	models.AddCartItemRequest	true	"Item to add"
//	@Success		200	{object}	models.CartResponse
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")

			return
		}

		cart, err := h.cartService.AddItem(r.Context(), s, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.String("productId", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart", slog.String("productId", req.ProductID))
		response.Success(w, http.StatusOK, cart)
	}
}

// AddItems godoc
//	@Summary		Add several items
//	@Description	Adds items in order; lines with equal ids merge.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			items	body	models.AddCartItemsRequest	true	"Items to add"
//	@Success		200	{object}	models.CartResponse
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/cart/items/batch [post]
func (h *CartHandler) AddItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid batch add to cart input")

			return
		}

		cart, err := h.cartService.AddItems(r.Context(), s, &req)
		if err != nil {
			logger.Error("Failed to add items to cart", slog.Int("count", len(req.Items)), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Items added to cart", slog.Int("count", len(req.Items)))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateItemQuantity godoc
//	@Summary		Set an item quantity
//	@Description	A quantity below 1 removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Cart item id"
//	@Param			quantity	body	models.UpdateCartItemRequest	true	"New quantity"
//	@Success		200	{object}	models.CartResponse
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/cart/items/{id} [patch]
func (h *CartHandler) UpdateItemQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity update input", slog.String("itemId", itemID))

			return
		}

		cart, err := h.cartService.UpdateItemQuantity(r.Context(), s, itemID, *req.Quantity)
		if err != nil {
			logger.Error("Failed to update cart item", slog.String("itemId", itemID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//	@Summary		Remove an item
//	@Description	Removes one line from the cart.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path	string	true	"Cart item id"
//	@Success		200	{object}	models.CartResponse
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")

		cart, err := h.cartService.RemoveItem(r.Context(), s, itemID)
		if err != nil {
			logger.Error("Failed to remove cart item", slog.String("itemId", itemID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveAll godoc
//	@Summary		Clear the cart
//	@Description	Removes every item. The promo code and order details are kept.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartResponse
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/cart [delete]
func (h *CartHandler) RemoveAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.RemoveAll(r.Context(), s)
		if err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ApplyPromoCode godoc
//	@Summary		Apply a promo code
//	@Description	Looks the code up, checks expiry, usage, minimum order and scope, then applies it.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			code	body	models.ApplyPromoCodeRequest	true	"Promo code"
//	@Success		200	{object}	models.CartResponse
//	@Failure		400	{object}	response.ErrorResponse	"Minimum order not met or code not applicable"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Invalid or inactive promo code"
//	@Failure		410	{object}	response.ErrorResponse	"Promo code expired or exhausted"
//	@Failure		429	{object}	response.ErrorResponse	"Too many promo code attempts"
//	@Failure		502	{object}	response.ErrorResponse	"Rate limiter unavailable"
//	@Security		BearerAuth
//	@Router			/api/v1/cart/promo [post]
func (h *CartHandler) ApplyPromoCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		var req models.ApplyPromoCodeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid promo code input")

			return
		}

		cart, err := h.cartService.ApplyPromoCode(r.Context(), s, req.Code)
		if err != nil {
			logger.Warn("Promo code not applied", slog.String("code", req.Code), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Promo code applied", slog.String("code", req.Code))
		response.Success(w, http.StatusOK, cart)
	}
}

// RemovePromoCode godoc
//	@Summary		Remove the promo code
//	@Description	Clears the applied promo code.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartResponse
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/cart/promo [delete]
func (h *CartHandler) RemovePromoCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.RemovePromoCode(r.Context(), s)
		if err != nil {
			logger.Error("Failed to remove promo code", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateCheckout godoc
//	@Summary		Update checkout details
//	@Description	Sets user info, order details, summary, payment method or the order-success flag.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body	models.CheckoutRequest	true	"Checkout fields"
//	@Success		200	{object}	models.CartResponse
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/cart/checkout [patch]
func (h *CartHandler) UpdateCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, logger, ok := shopper(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")

			return
		}

		cart, err := h.cartService.UpdateCheckout(r.Context(), s, &req)
		if err != nil {
			logger.Error("Failed to update checkout", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
