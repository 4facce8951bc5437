package list_products

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/products/models"
)

type ProductService interface {
	List(ctx context.Context, category string) (*models.ProductListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
