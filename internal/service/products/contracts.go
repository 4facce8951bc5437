package products

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	List(ctx context.Context, category *string) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateStock(ctx context.Context, id int64, quantity int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
