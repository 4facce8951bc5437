package reviews

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Review, error)
	ListByStylist(ctx context.Context, stylistID int64) ([]*domain.Review, error)
}

// BookingRepository бронирования клиента
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// UserRepository имя автора отзыва
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
