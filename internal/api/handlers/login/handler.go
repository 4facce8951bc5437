package login

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

// Handle POST /api/v1/auth/login
// Неизвестный номер регистрирует нового клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.LoginByPhone(r.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPhone) {
			h.logger.Warn("POST /auth/login - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)
			return
		}
		h.logger.Error("POST /auth/login - Failed to login: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.sessions.SetCookie(w, result.Token)

	h.logger.Info("POST /auth/login - User logged in: user_id=%d, created=%t", result.User.ID, result.Created)
	handlers.RespondJSON(w, http.StatusOK, result)
}
