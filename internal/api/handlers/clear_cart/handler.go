package clear_cart

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
)

const msgMissingUserID = "authentication required"

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

// Handle DELETE /api/v1/me/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /me/cart - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /me/cart - Failed to clear cart: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /me/cart - Cart cleared: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
