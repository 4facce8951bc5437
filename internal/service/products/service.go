package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	productRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/product"
	"github.com/m04kA/Mila-BookingService/internal/service/products/models"
)

// Service товары магазина салона
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса товаров
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List возвращает товары, опционально только одной категории
func (s *Service) List(ctx context.Context, category string) (*models.ProductListResponse, error) {
	var filter *string
	if c := strings.TrimSpace(category); c != "" {
		filter = &c
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProductList(products), nil
}

// AddCustom добавляет собственный товар салона
func (s *Service) AddCustom(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error) {
	s.logger.Info("AddCustom: adding product name=%q brand=%q", req.Name, req.Brand)

	if err := req.Validate(); err != nil {
		s.logger.Warn("AddCustom: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.productRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("AddCustom: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddCustom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddCustom: created product id=%d", created.ID)
	resp := models.FromDomainProduct(created)
	return &resp, nil
}

// UpdateStock устанавливает количество товара на складе
func (s *Service) UpdateStock(ctx context.Context, productID int64, req *models.UpdateStockRequest) error {
	s.logger.Info("UpdateStock: product id=%d stock=%d", productID, req.StockQuantity)

	if req.StockQuantity < 0 {
		s.logger.Warn("UpdateStock: negative stock for product id=%d", productID)
		return fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrNegativeStock)
	}

	if err := s.productRepo.UpdateStock(ctx, productID, req.StockQuantity); err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("UpdateStock: product id=%d not found", productID)
			return ErrProductNotFound
		}
		s.logger.Error("UpdateStock: repository error for product id=%d: %v", productID, err)
		return fmt.Errorf("%w: UpdateStock - repository error: %v", ErrInternal, err)
	}

	return nil
}
