package add_cart_item

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/cart/models"
)

type CartService interface {
	AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
