package update_stylist_schedule

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateStylistSchedule(ctx context.Context, stylistID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
