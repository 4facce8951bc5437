package list_pending_reviews

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	PendingReviews(ctx context.Context, clientID int64) (*models.PendingReviewsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
