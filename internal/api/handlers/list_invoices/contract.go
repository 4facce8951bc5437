package list_invoices

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/billing/models"
)

type BillingService interface {
	ListInvoices(ctx context.Context, filter string) (*models.InvoiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
