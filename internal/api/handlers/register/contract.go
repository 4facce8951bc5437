package register

import (
	"context"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/service/auth/models"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
}

type SessionWriter interface {
	SetCookie(w http.ResponseWriter, token string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
