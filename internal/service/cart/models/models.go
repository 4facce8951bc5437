package models

import (
	"github.com/m04kA/Mila-BookingService/internal/domain"
	productmodels "github.com/m04kA/Mila-BookingService/internal/service/products/models"
)

// AddItemRequest добавление товара в корзину; Quantity по умолчанию 1
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// UpdateItemRequest новое количество; 0 и меньше удаляет строку
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse строка корзины
type CartLineResponse struct {
	Product  productmodels.ProductResponse `json:"product"`
	Quantity int                           `json:"quantity"`
	Subtotal float64                       `json:"subtotal"`
}

// CartResponse корзина с итогами
type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice float64            `json:"totalPrice"`
}

// FromDomainCart конвертирует корзину в DTO
func FromDomainCart(c *domain.Cart) *CartResponse {
	resp := &CartResponse{
		Items:      make([]CartLineResponse, 0, len(c.Lines)),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
	for _, l := range c.Lines {
		resp.Items = append(resp.Items, CartLineResponse{
			Product:  productmodels.FromDomainProduct(l.Product),
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}
	return resp
}
