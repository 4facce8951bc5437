package catalog

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// CatalogRepository мастера, категории и услуги салона
type CatalogRepository interface {
	GetStylistByID(ctx context.Context, id int64) (*domain.Stylist, error)
	ListStylists(ctx context.Context) ([]*domain.Stylist, error)
	ListCategories(ctx context.Context) ([]*domain.ServiceCategory, error)
	ListServices(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// ScheduleRepository недельное расписание мастера
type ScheduleRepository interface {
	GetByStylistID(ctx context.Context, stylistID int64) ([]domain.WeeklyAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
