package list_stylists

import (
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListStylists(r.Context())
	if err != nil {
		h.logger.Error("GET /stylists - Failed to list stylists: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stylists - Stylists retrieved: count=%d", len(result.Stylists))
	handlers.RespondJSON(w, http.StatusOK, result)
}
