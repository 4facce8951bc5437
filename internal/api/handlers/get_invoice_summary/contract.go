package get_invoice_summary

import (
	"context"

	"github.com/m04kA/Mila-BookingService/internal/service/billing/models"
)

type BillingService interface {
	Summary(ctx context.Context) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
