package toggle_invoice

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/billing/models"
)

type BillingService interface {
	TogglePaid(ctx context.Context, invoiceID int64) (*models.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
