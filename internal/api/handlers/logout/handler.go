package logout

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
)

// SessionWriter сбрасывает cookie сессии
type SessionWriter interface {
	ClearCookie(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	sessions SessionWriter
	logger   Logger
}

func NewHandler(sessions SessionWriter, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/logout
// Токен не хранится на сервере, поэтому достаточно удалить cookie
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	h.logger.Info("POST /auth/logout - Session cookie cleared")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
