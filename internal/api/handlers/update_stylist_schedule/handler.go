package update_stylist_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/schedule"
	"github.com/m04kA/Mila-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidStylistID   = "invalid stylist ID"
	msgInvalidRequestBody = "invalid request body"
	msgStylistNotFound    = "stylist not found"
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

// Handle PUT /api/v1/admin/stylists/{stylistId}/schedule
// Тело запроса заменяет недельное расписание целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("PUT /admin/stylists/{id}/schedule - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/stylists/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStylistSchedule(r.Context(), stylistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrStylistNotFound):
			h.logger.Warn("PUT /admin/stylists/{id}/schedule - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, schedule.ErrInvalidSchedule):
			h.logger.Warn("PUT /admin/stylists/{id}/schedule - Invalid schedule: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/stylists/{id}/schedule - Failed to update schedule: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/stylists/{id}/schedule - Schedule updated: stylist_id=%d", stylistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
