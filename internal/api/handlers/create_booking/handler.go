package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/Mila-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "authentication required"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid start time format, expected HH:MM"
	msgSlotNotAvailable   = "the selected time slot is no longer available"
	msgInvalidTimeSlot    = "no bookable slot starts at the selected time"
	msgStylistNotFound    = "stylist not found"
	msgServiceNotFound    = "service not found"
	msgServiceNotOffered  = "the stylist does not offer the selected service"
	msgInvalidBookingDate = "bookings can only be made for future dates"
	msgDateTooFar         = "bookings can only be made up to 30 days in advance"
	msgGuestNotAllowed    = "only administrators can book for guests"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

type Handler struct {
	useCase BookingCreator
	logger  Logger
}

func NewHandler(useCase BookingCreator, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetRole(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID, role)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, stylist_id=%d", userID, req.StylistID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, stylist_id=%d, time=%s",
				userID, req.StylistID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrStylistNotFound):
			h.logger.Warn("POST /bookings - Stylist not found: stylist_id=%d", req.StylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: services=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotOffered):
			h.logger.Warn("POST /bookings - Service not offered: stylist_id=%d, services=%v", req.StylistID, req.ServiceIDs)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%d, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrGuestNotAllowed):
			h.logger.Warn("POST /bookings - Guest booking denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgGuestNotAllowed)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, stylist_id=%d, error=%v",
				userID, req.StylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, stylist_id=%d",
		result.ID, userID, req.StylistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
