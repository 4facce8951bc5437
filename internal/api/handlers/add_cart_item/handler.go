package add_cart_item

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
	msgInvalidRequestBody = "invalid request body"
	msgInvalidProductID   = "invalid product ID"
	msgProductNotFound    = "product not found"
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

// Handle POST /api/v1/me/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /me/cart/items - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /me/cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ProductID <= 0 {
		h.logger.Warn("POST /me/cart/items - Invalid product ID: %d", req.ProductID)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.AddItem(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, cart.ErrProductNotFound) {
			h.logger.Warn("POST /me/cart/items - Product not found: product_id=%d", req.ProductID)
			handlers.RespondNotFound(w, msgProductNotFound)
			return
		}
		h.logger.Error("POST /me/cart/items - Failed to add item: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /me/cart/items - Item added: user_id=%d, product_id=%d", userID, req.ProductID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
