package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetWithFilter внутри транзакции блокирует бронирования дня (FOR UPDATE)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс каталога стилистов и услуг
type CatalogRepository interface {
	GetStylistByID(ctx context.Context, id int64) (*domain.Stylist, error)
	ListServices(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetByStylistID(ctx context.Context, stylistID int64) ([]domain.WeeklyAvailability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	IncBookingCreated()
	IncBookingRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
