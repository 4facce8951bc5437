package get_analytics

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/analytics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Analytics(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/analytics - Failed to build analytics: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/analytics - Analytics retrieved: bookings_this_week=%d", result.BookingsThisWeek)
	handlers.RespondJSON(w, http.StatusOK, result)
}
