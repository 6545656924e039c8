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

// CartSyncHandler receives cart mirrors from storefront processes and triggers reminders.
type CartSyncHandler struct {
	notificationService service.CartNotificationService
	validator           *validator.Validate
}

func NewCartSyncHandler(notificationService service.CartNotificationService) *CartSyncHandler {
	return &CartSyncHandler{
		notificationService: notificationService,
		validator:           validator.New(),
	}
}

// Sync godoc
//	@Summary		Replace the synced cart
//	@Description	Upserts the shopper's cart notification document.
//	@Tags			Cart Sync
//	@Accept			json
//	@Produce		json
//	@Param			cart	body	models.CartSyncRequest	true	"Cart items"
//	@Success		200	{object}	response.APIResponse
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/cart/sync [post]
func (h *CartSyncHandler) Sync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart sync attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		logger = logger.With(slog.String("userID", claims.UserID))

		var req models.CartSyncRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart sync input")

			return
		}

		if err := h.notificationService.Sync(r.Context(), claims, req.Items); err != nil {
			logger.Error("Failed to sync cart", slog.Int("items", len(req.Items)), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Debug("Cart synced", slog.Int("items", len(req.Items)))
		response.Success(w, http.StatusOK, nil)
	}
}

// Edit godoc
//	@Summary		Edit the synced cart
//	@Description	Removes a product or updates its quantity.
//	@Tags			Cart Sync
//	@Accept			json
//	@Produce		json
//	@Param			edit	body	models.CartEditRequest	true	"Edit"
//	@Success		200	{object}	response.APIResponse
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/cart/sync/edit [patch]
func (h *CartSyncHandler) Edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart edit attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		logger = logger.With(slog.String("userID", claims.UserID))

		var req models.CartEditRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart edit input")

			return
		}

		if err := h.notificationService.Edit(r.Context(), claims.UserID, req.Action, req.Item); err != nil {
			logger.Error("Failed to edit synced cart",
				slog.String("action", string(req.Action)),
				slog.String("productId", req.Item.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, nil)
	}
}

// SendAbandoned godoc
//	@Summary		Send abandoned-cart reminders
//	@Description	Emails every cart that has not been notified yet.
//	@Tags			Cart Sync
//	@Produce		json
//	@Success		200	{object}	models.AbandonedCartsResult
//	@Failure		401	{object}	response.ErrorResponse	"Invalid API key"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/api/cart/abandoned [post]
func (h *CartSyncHandler) SendAbandoned() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		result, err := h.notificationService.SendAbandoned(r.Context())
		if err != nil {
			logger.Error("Failed to send abandoned cart emails", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
