package submit_review

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	Submit(ctx context.Context, clientID int64, req *models.SubmitReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
