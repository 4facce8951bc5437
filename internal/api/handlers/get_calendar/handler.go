package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/bookings"
	"github.com/m04kA/Mila-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidStylistID = "invalid stylist ID"
	msgInvalidParams    = "invalid query parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: from, to (YYYY-MM-DD), stylistId, status (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq := &models.GetCalendarRequest{
		From:   handlers.OptionalQuery(r, "from"),
		To:     handlers.OptionalQuery(r, "to"),
		Status: handlers.OptionalQuery(r, "status"),
	}

	if raw := r.URL.Query().Get("stylistId"); raw != "" {
		stylistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid stylist ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStylistID)
			return
		}
		serviceReq.StylistID = &stylistID
	}

	result, err := h.service.GetCalendar(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to get bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Calendar retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
