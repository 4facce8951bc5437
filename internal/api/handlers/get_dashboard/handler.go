package get_dashboard

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

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Dashboard retrieved: total_bookings=%d", result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
