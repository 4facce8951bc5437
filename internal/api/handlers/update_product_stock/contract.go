package update_product_stock

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/products/models"
)

type ProductService interface {
	UpdateStock(ctx context.Context, productID int64, req *models.UpdateStockRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
