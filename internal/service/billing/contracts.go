package billing

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	invoiceRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/invoice"
)

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	ListUninvoiced(ctx context.Context, statuses []domain.BookingStatus) ([]invoiceRepo.Uninvoiced, error)
	Create(ctx context.Context, inv *domain.Invoice) (bool, error)
	List(ctx context.Context, status *domain.InvoiceStatus) ([]*domain.Invoice, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
	Summary(ctx context.Context) (*domain.InvoiceSummary, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
