package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/auth"
	"github.com/m04kA/Mila-BookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPhone       = "phone must contain 7 to 15 digits"
	msgPhoneTaken         = "phone already registered"
)

type Handler struct {
	service  AuthService
	sessions SessionWriter
	logger   Logger
}

func NewHandler(service AuthService, sessions SessionWriter, logger Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, auth.ErrInvalidPhone):
			h.logger.Warn("POST /auth/register - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, auth.ErrPhoneTaken):
			h.logger.Warn("POST /auth/register - Phone already registered")
			handlers.RespondConflict(w, msgPhoneTaken)

		default:
			h.logger.Error("POST /auth/register - Failed to register: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.sessions.SetCookie(w, result.Token)

	h.logger.Info("POST /auth/register - User registered: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
