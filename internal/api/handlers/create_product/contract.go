package create_product

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/products/models"
)

type ProductService interface {
	AddCustom(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
