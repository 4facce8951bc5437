package get_stylist

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetStylist(ctx context.Context, id int64) (*models.StylistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
