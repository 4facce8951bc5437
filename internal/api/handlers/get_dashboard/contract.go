package get_dashboard

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/analytics/models"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
