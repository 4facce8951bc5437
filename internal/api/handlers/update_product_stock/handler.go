package update_product_stock

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/service/products"
	"github.com/m04kA/Mila-BookingService/internal/service/products/models"
)

const (
	msgInvalidProductID   = "invalid product ID"
	msgInvalidRequestBody = "invalid request body"
	msgProductNotFound    = "product not found"
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

// Handle PATCH /api/v1/admin/products/{productId}/stock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathID(r, "productId")
	if err != nil {
		h.logger.Warn("PATCH /admin/products/{id}/stock - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req models.UpdateStockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/products/{id}/stock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStock(r.Context(), productID, &req)
	if err != nil {
		switch {
		case errors.Is(err, products.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/products/{id}/stock - Invalid input: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, products.ErrProductNotFound):
			h.logger.Warn("PATCH /admin/products/{id}/stock - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		default:
			h.logger.Error("PATCH /admin/products/{id}/stock - Failed to update stock: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/products/{id}/stock - Stock updated: product_id=%d, stock=%d",
		productID, req.StockQuantity)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
