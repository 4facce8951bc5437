package cart

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// CartRepository интерфейс репозитория корзины
type CartRepository interface {
	GetLines(ctx context.Context, userID int64) ([]domain.CartLine, error)
	AddItem(ctx context.Context, userID, productID int64, quantity int) error
	SetQuantity(ctx context.Context, userID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}

// ProductRepository проверка существования товара
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
