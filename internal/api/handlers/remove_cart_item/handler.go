package remove_cart_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
	"github.com/m04kA/Mila-BookingService/internal/service/cart"
)

const (
	msgMissingUserID    = "authentication required"
	msgInvalidProductID = "invalid product ID"
	msgItemNotFound     = "cart item not found"
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

// Handle DELETE /api/v1/me/cart/items/{productId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /me/cart/items/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	productID, err := handlers.PathID(r, "productId")
	if err != nil {
		h.logger.Warn("DELETE /me/cart/items/{id} - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			h.logger.Warn("DELETE /me/cart/items/{id} - Item not found: user_id=%d, product_id=%d", userID, productID)
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("DELETE /me/cart/items/{id} - Failed to remove item: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /me/cart/items/{id} - Item removed: user_id=%d, product_id=%d", userID, productID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
