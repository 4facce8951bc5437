package login

import (
	"context"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/service/auth/models"
)

type AuthService interface {
	LoginByPhone(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

// SessionWriter выставляет cookie сессии
type SessionWriter interface {
	SetCookie(w http.ResponseWriter, token string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
