package schedule

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельного расписания мастеров
type ScheduleRepository interface {
	GetByStylistID(ctx context.Context, stylistID int64) ([]domain.WeeklyAvailability, error)
	Replace(ctx context.Context, stylistID int64, schedule []domain.WeeklyAvailability) error
}

// StylistRepository проверка существования мастера
type StylistRepository interface {
	GetStylistByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
