package get_available_dates

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetAvailableDates(ctx context.Context, stylistID int64) (*models.AvailableDatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
