package list_my_reviews

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
)

const msgMissingUserID = "authentication required"

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /me/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /me/reviews - Failed to list reviews: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/reviews - Reviews retrieved: user_id=%d, count=%d", userID, len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
