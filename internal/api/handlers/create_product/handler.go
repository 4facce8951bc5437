package create_product

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/products"
	"github.com/m04kA/Mila-BookingService/internal/service/products/models"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle POST /api/v1/admin/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/products - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddCustom(r.Context(), &req)
	if err != nil {
		if errors.Is(err, products.ErrInvalidInput) {
			h.logger.Warn("POST /admin/products - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /admin/products - Failed to create product: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/products - Product created: product_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
