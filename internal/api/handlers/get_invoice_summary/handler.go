package get_invoice_summary

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

// Handle GET /api/v1/admin/invoices/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/invoices/summary - Failed to get summary: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/invoices/summary - Summary retrieved: count=%d", result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
