package toggle_invoice

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/billing"
)

const (
	msgInvalidInvoiceID = "invalid invoice ID"
	msgInvoiceNotFound  = "invoice not found"
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/invoices/{invoiceId}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := handlers.PathID(r, "invoiceId")
	if err != nil {
		h.logger.Warn("PATCH /admin/invoices/{id}/toggle - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	result, err := h.service.TogglePaid(r.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, billing.ErrInvoiceNotFound) {
			h.logger.Warn("PATCH /admin/invoices/{id}/toggle - Invoice not found: invoice_id=%d", invoiceID)
			handlers.RespondNotFound(w, msgInvoiceNotFound)
			return
		}
		h.logger.Error("PATCH /admin/invoices/{id}/toggle - Failed to toggle invoice: invoice_id=%d, error=%v",
			invoiceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /admin/invoices/{id}/toggle - Invoice toggled: invoice_id=%d, status=%s",
		invoiceID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
