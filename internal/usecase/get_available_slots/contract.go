package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetWithFilter получает бронирования стилиста за день
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

// Metrics бизнес-метрики выдачи слотов
type Metrics interface {
	ObserveSlotsServed(count int)
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
