package models

import (
	"errors"
	"strings"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// DefaultCategory категория товара, добавленного без категории
const DefaultCategory = "hair"

var (
	ErrNameRequired  = errors.New("name is required")
	ErrBrandRequired = errors.New("brand is required")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrNegativeStock = errors.New("stock must not be negative")
	ErrRatingRange   = errors.New("rating must be between 0 and 5")
)

// CreateProductRequest добавление собственного товара администратором
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	Rating        float64 `json:"rating"`
	Featured      bool    `json:"featured"`
}

// Validate проверяет обязательные поля
func (r *CreateProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(r.Brand) == "" {
		return ErrBrandRequired
	}
	if r.Price < 0 {
		return ErrNegativePrice
	}
	if r.StockQuantity < 0 {
		return ErrNegativeStock
	}
	if r.Rating < 0 || r.Rating > domain.MaxRating {
		return ErrRatingRange
	}
	return nil
}

// ToDomain конвертирует запрос в товар с флагом IsCustom
func (r *CreateProductRequest) ToDomain() *domain.Product {
	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = DefaultCategory
	}
	return &domain.Product{
		Name:          strings.TrimSpace(r.Name),
		Brand:         strings.TrimSpace(r.Brand),
		Description:   strings.TrimSpace(r.Description),
		Price:         r.Price,
		Category:      category,
		StockQuantity: r.StockQuantity,
		Rating:        r.Rating,
		Featured:      r.Featured,
		IsCustom:      true,
	}
}

// UpdateStockRequest новое количество на складе
type UpdateStockRequest struct {
	StockQuantity int `json:"stockQuantity"`
}

// ProductResponse товар магазина
type ProductResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	InStock       bool    `json:"inStock"`
	Rating        float64 `json:"rating"`
	Featured      bool    `json:"featured"`
	IsCustom      bool    `json:"isCustom"`
}

// ProductListResponse список товаров
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// FromDomainProduct конвертирует domain модель в DTO
func FromDomainProduct(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		InStock:       p.InStock(),
		Rating:        p.Rating,
		Featured:      p.Featured,
		IsCustom:      p.IsCustom,
	}
}

// FromDomainProductList конвертирует список товаров
func FromDomainProductList(products []*domain.Product) *ProductListResponse {
	resp := &ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, FromDomainProduct(p))
	}
	return resp
}
