package get_analytics

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/analytics/models"
)

type AnalyticsService interface {
	Analytics(ctx context.Context) (*models.AnalyticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
