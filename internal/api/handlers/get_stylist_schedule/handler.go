package get_stylist_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/schedule"
)

const (
	msgInvalidStylistID = "invalid stylist ID"
	msgStylistNotFound  = "stylist not found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stylists/{stylistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /admin/stylists/{id}/schedule - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.GetStylistSchedule(r.Context(), stylistID)
	if err != nil {
		if errors.Is(err, schedule.ErrStylistNotFound) {
			h.logger.Warn("GET /admin/stylists/{id}/schedule - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)
			return
		}
		h.logger.Error("GET /admin/stylists/{id}/schedule - Failed to get schedule: stylist_id=%d, error=%v",
			stylistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stylists/{id}/schedule - Schedule retrieved: stylist_id=%d, days=%d",
		stylistID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
