package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/Mila-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStylistID   = "invalid stylist ID"
	msgInvalidServiceIDs  = "serviceIds must be a comma separated list of IDs"
	msgMissingDate        = "date is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgStylistNotFound    = "stylist not found"
	msgServiceNotFound    = "service not found"
	msgServiceNotOffered  = "the stylist does not offer the selected service"
	msgInvalidBookingDate = "bookings can only be made for future dates"
	msgDateTooFar         = "bookings can only be made up to 30 days in advance"
)

type Handler struct {
	useCase SlotFinder
	logger  Logger
}

func NewHandler(useCase SlotFinder, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/available-slots
// Query params: date (required, YYYY-MM-DD), serviceIds (optional, "1,2")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	serviceIDs, err := handlers.QueryIDs(r.URL.Query().Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid service IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stylists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(stylistID, serviceIDs, dateStr)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/available-slots - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /stylists/{id}/available-slots - Service not found: services=%v", serviceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotOffered):
			h.logger.Warn("GET /stylists/{id}/available-slots - Service not offered: stylist_id=%d, services=%v",
				stylistID, serviceIDs)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /stylists/{id}/available-slots - Date not bookable: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /stylists/{id}/available-slots - Date too far: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /stylists/{id}/available-slots - Failed to get slots: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/available-slots - Slots retrieved successfully: stylist_id=%d, date=%s, slots_count=%d",
		stylistID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
