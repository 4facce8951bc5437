package update_profile

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/auth/models"
)

type ProfileService interface {
	UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
