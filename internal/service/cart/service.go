package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	cartRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/cart"
	productRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/product"
	"github.com/m04kA/Mila-BookingService/internal/service/cart/models"
)

// Service корзина пользователя
type Service struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(cartRepo CartRepository, productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get возвращает корзину пользователя с итогами
func (s *Service) Get(ctx context.Context, userID int64) (*models.CartResponse, error) {
	lines, err := s.cartRepo.GetLines(ctx, userID)
	if err != nil {
		s.logger.Error("Get: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCart(&domain.Cart{UserID: userID, Lines: lines}), nil
}

// AddItem добавляет товар; если он уже в корзине, увеличивает количество
func (s *Service) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartResponse, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	s.logger.Info("AddItem: user=%d product=%d quantity=%d", userID, req.ProductID, quantity)

	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("AddItem: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		s.logger.Error("AddItem: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: AddItem - get product: %v", ErrInternal, err)
	}

	if err := s.cartRepo.AddItem(ctx, userID, req.ProductID, quantity); err != nil {
		s.logger.Error("AddItem: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: AddItem - repository error: %v", ErrInternal, err)
	}

	return s.Get(ctx, userID)
}

// UpdateItem задает количество товара; количество 0 и меньше удаляет строку
func (s *Service) UpdateItem(ctx context.Context, userID, productID int64, req *models.UpdateItemRequest) (*models.CartResponse, error) {
	s.logger.Info("UpdateItem: user=%d product=%d quantity=%d", userID, productID, req.Quantity)

	var err error
	if req.Quantity <= 0 {
		err = s.cartRepo.RemoveItem(ctx, userID, productID)
	} else {
		err = s.cartRepo.SetQuantity(ctx, userID, productID, req.Quantity)
	}
	if err := s.mapItemError("UpdateItem", userID, productID, err); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// RemoveItem удаляет товар из корзины
func (s *Service) RemoveItem(ctx context.Context, userID, productID int64) (*models.CartResponse, error) {
	s.logger.Info("RemoveItem: user=%d product=%d", userID, productID)

	err := s.cartRepo.RemoveItem(ctx, userID, productID)
	if err := s.mapItemError("RemoveItem", userID, productID, err); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// Clear очищает корзину
func (s *Service) Clear(ctx context.Context, userID int64) error {
	s.logger.Info("Clear: user=%d", userID)

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		s.logger.Error("Clear: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) mapItemError(method string, userID, productID int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, cartRepo.ErrItemNotFound) {
		s.logger.Warn("%s: product id=%d not in cart of user=%d", method, productID, userID)
		return ErrItemNotFound
	}
	s.logger.Error("%s: repository error for user=%d: %v", method, userID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
}
