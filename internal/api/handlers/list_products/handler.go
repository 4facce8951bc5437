package list_products

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
)

type Handler struct {
	service ProductService
	logger  Logger
}

func NewHandler(service ProductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products и GET /api/v1/admin/products
// Query params: category (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	result, err := h.service.List(r.Context(), category)
	if err != nil {
		h.logger.Error("GET %s - Failed to list products: category=%q, error=%v", r.URL.Path, category, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET %s - Products retrieved: category=%q, count=%d", r.URL.Path, category, len(result.Products))
	handlers.RespondJSON(w, http.StatusOK, result)
}
