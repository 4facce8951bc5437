package submit_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
	"github.com/m04kA/Mila-BookingService/internal/service/reviews"
	"github.com/m04kA/Mila-BookingService/internal/service/reviews/models"
)

const (
	msgMissingUserID      = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgForbidden          = "access denied"
	msgNotCompleted       = "only completed bookings can be reviewed"
	msgAlreadyReviewed    = "booking already reviewed"
)

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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reviews.ErrBookingNotFound):
			h.logger.Warn("POST /reviews - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /reviews - Access denied: booking_id=%d, user_id=%d", req.BookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviews.ErrNotCompleted):
			h.logger.Warn("POST /reviews - Booking not completed: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgNotCompleted)

		case errors.Is(err, reviews.ErrAlreadyReviewed):
			h.logger.Warn("POST /reviews - Already reviewed: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		default:
			h.logger.Error("POST /reviews - Failed to submit review: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review submitted: review_id=%d, booking_id=%d", result.ID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
