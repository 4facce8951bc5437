package get_stylist

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/catalog"
)

const (
	msgInvalidStylistID = "invalid stylist ID"
	msgStylistNotFound  = "stylist not found"
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

// Handle GET /api/v1/stylists/{stylistId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := handlers.PathID(r, "stylistId")
	if err != nil {
		h.logger.Warn("GET /stylists/{id} - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.GetStylist(r.Context(), stylistID)
	if err != nil {
		if errors.Is(err, catalog.ErrStylistNotFound) {
			h.logger.Warn("GET /stylists/{id} - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)
			return
		}
		h.logger.Error("GET /stylists/{id} - Failed to get stylist: stylist_id=%d, error=%v", stylistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stylists/{id} - Stylist retrieved: stylist_id=%d", stylistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
