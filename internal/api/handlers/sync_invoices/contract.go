package sync_invoices

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/billing/models"
)

type BillingService interface {
	SyncInvoices(ctx context.Context) (*models.SyncResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
