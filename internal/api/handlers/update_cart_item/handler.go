package update_cart_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
	"github.com/m04kA/Mila-BookingService/internal/service/cart"
	"github.com/m04kA/Mila-BookingService/internal/service/cart/models"
)

const (
	msgMissingUserID      = "authentication required"
	msgInvalidProductID   = "invalid product ID"
	msgInvalidRequestBody = "invalid request body"
	msgItemNotFound       = "cart item not found"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/me/cart/items/{productId}
// Количество 0 и меньше удаляет товар из корзины
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /me/cart/items/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	productID, err := handlers.PathID(r, "productId")
	if err != nil {
		h.logger.Warn("PUT /me/cart/items/{id} - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req models.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/cart/items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateItem(r.Context(), userID, productID, &req)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			h.logger.Warn("PUT /me/cart/items/{id} - Item not found: user_id=%d, product_id=%d", userID, productID)
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("PUT /me/cart/items/{id} - Failed to update item: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /me/cart/items/{id} - Item updated: user_id=%d, product_id=%d, quantity=%d",
		userID, productID, req.Quantity)
	handlers.RespondJSON(w, http.StatusOK, result)
}
