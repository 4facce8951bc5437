package get_available_dates

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

// Handle GET /api/v1/stylists/{stylistId}/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-dates - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.GetAvailableDates(r.Context(), stylistID)
	if err != nil {
		if errors.Is(err, schedule.ErrStylistNotFound) {
			h.logger.Warn("GET /stylists/{id}/available-dates - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)
			return
		}
		h.logger.Error("GET /stylists/{id}/available-dates - Failed to get dates: stylist_id=%d, error=%v",
			stylistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stylists/{id}/available-dates - Dates retrieved: stylist_id=%d, count=%d",
		stylistID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
