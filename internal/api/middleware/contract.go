package middleware

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/infra/session"
)

// SessionReader проверяет токен сессии в запросе
type SessionReader interface {
	FromRequest(r *http.Request) (*session.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
