package sync_invoices

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
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

// Handle POST /api/v1/admin/invoices/sync
// Повторный вызов не создаёт дубликатов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SyncInvoices(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/invoices/sync - Failed to sync invoices: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/invoices/sync - Invoices synced: created=%d", result.Created)
	handlers.RespondJSON(w, http.StatusOK, result)
}
