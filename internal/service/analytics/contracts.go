package analytics

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// BookingRepository все бронирования и последние созданные
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetRecent(ctx context.Context, limit int) ([]*domain.Booking, error)
}

// CatalogRepository справочники для подписей агрегатов
type CatalogRepository interface {
	ListStylists(ctx context.Context) ([]*domain.Stylist, error)
	ListCategories(ctx context.Context) ([]*domain.ServiceCategory, error)
	ListServices(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// ReviewRepository все отзывы для средней оценки
type ReviewRepository interface {
	ListAll(ctx context.Context) ([]*domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
