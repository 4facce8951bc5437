package list_stylist_reviews

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
)

const msgInvalidStylistID = "invalid stylist ID"

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

// Handle GET /api/v1/stylists/{stylistId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/reviews - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.ListByStylist(r.Context(), stylistID)
	if err != nil {
		h.logger.Error("GET /stylists/{id}/reviews - Failed to list reviews: stylist_id=%d, error=%v", stylistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stylists/{id}/reviews - Reviews retrieved: stylist_id=%d, count=%d",
		stylistID, len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
