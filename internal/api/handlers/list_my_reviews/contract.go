package list_my_reviews

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	ListMine(ctx context.Context, clientID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
