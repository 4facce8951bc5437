package list_invoices

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/billing"
)

const msgInvalidFilter = "status must be all, paid or pending"

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

// Handle GET /api/v1/admin/invoices
// Query params: status = all|paid|pending (по умолчанию all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")

	result, err := h.service.ListInvoices(r.Context(), filter)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidFilter) {
			h.logger.Warn("GET /admin/invoices - Invalid filter: status=%q", filter)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/invoices - Failed to list invoices: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/invoices - Invoices retrieved: status=%q, count=%d", filter, len(result.Invoices))
	handlers.RespondJSON(w, http.StatusOK, result)
}
