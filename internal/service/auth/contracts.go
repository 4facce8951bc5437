package auth

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// UserRepository справочник пользователей по телефону
type UserRepository interface {
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// TokenIssuer выпускает токен сессии
type TokenIssuer interface {
	Encode(userID int64, role domain.UserRole) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
