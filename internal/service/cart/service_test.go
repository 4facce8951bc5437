package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	cartRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/cart"
	productRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/product"
	"github.com/m04kA/Mila-BookingService/internal/service/cart"
	"github.com/m04kA/Mila-BookingService/internal/service/cart/models"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	args := m.Called(ctx, userID)
	l, _ := args.Get(0).([]domain.CartLine)
	return l, args.Error(1)
}

func (m *MockCartRepository) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	return m.Called(ctx, userID, productID, quantity).Error(0)
}

func (m *MockCartRepository) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	return m.Called(ctx, userID, productID, quantity).Error(0)
}

func (m *MockCartRepository) RemoveItem(ctx context.Context, userID, productID int64) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

var (
	shampoo = &domain.Product{ID: 1, Name: "Shampoo", Price: 24.5, StockQuantity: 10}
	polish  = &domain.Product{ID: 2, Name: "Polish", Price: 12, StockQuantity: 3}
)

func TestService_Get_Totals(t *testing.T) {
	ctx := context.Background()
	cr := new(MockCartRepository)
	cr.On("GetLines", ctx, int64(2)).Return([]domain.CartLine{
		{Product: shampoo, Quantity: 2},
		{Product: polish, Quantity: 1},
	}, nil)

	resp, err := cart.NewService(cr, new(MockProductRepository), logger.NewNop()).Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalItems)
	assert.InDelta(t, 61.0, resp.TotalPrice, 1e-9)
	assert.InDelta(t, 49.0, resp.Items[0].Subtotal, 1e-9)
}

func TestService_Get_Empty(t *testing.T) {
	ctx := context.Background()
	cr := new(MockCartRepository)
	cr.On("GetLines", ctx, int64(2)).Return(nil, nil)

	resp, err := cart.NewService(cr, new(MockProductRepository), logger.NewNop()).Get(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, resp.Items)
	assert.Zero(t, resp.TotalItems)
	assert.Zero(t, resp.TotalPrice)
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults quantity to one", func(t *testing.T) {
		cr, pr := new(MockCartRepository), new(MockProductRepository)
		pr.On("GetByID", ctx, int64(1)).Return(shampoo, nil)
		cr.On("AddItem", ctx, int64(2), int64(1), 1).Return(nil)
		cr.On("GetLines", ctx, int64(2)).Return([]domain.CartLine{{Product: shampoo, Quantity: 1}}, nil)

		resp, err := cart.NewService(cr, pr, logger.NewNop()).AddItem(ctx, 2, &models.AddItemRequest{ProductID: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalItems)
		cr.AssertExpectations(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		cr, pr := new(MockCartRepository), new(MockProductRepository)
		pr.On("GetByID", ctx, int64(77)).Return(nil, productRepo.ErrProductNotFound)

		_, err := cart.NewService(cr, pr, logger.NewNop()).AddItem(ctx, 2, &models.AddItemRequest{ProductID: 77, Quantity: 2})
		assert.ErrorIs(t, err, cart.ErrProductNotFound)
		cr.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_UpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("sets quantity", func(t *testing.T) {
		cr := new(MockCartRepository)
		cr.On("SetQuantity", ctx, int64(2), int64(1), 4).Return(nil)
		cr.On("GetLines", ctx, int64(2)).Return([]domain.CartLine{{Product: shampoo, Quantity: 4}}, nil)

		resp, err := cart.NewService(cr, new(MockProductRepository), logger.NewNop()).
			UpdateItem(ctx, 2, 1, &models.UpdateItemRequest{Quantity: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalItems)
	})

	for _, qty := range []int{0, -3} {
		t.Run("non-positive quantity removes line", func(t *testing.T) {
			cr := new(MockCartRepository)
			cr.On("RemoveItem", ctx, int64(2), int64(1)).Return(nil)
			cr.On("GetLines", ctx, int64(2)).Return(nil, nil)

			resp, err := cart.NewService(cr, new(MockProductRepository), logger.NewNop()).
				UpdateItem(ctx, 2, 1, &models.UpdateItemRequest{Quantity: qty})
			require.NoError(t, err)
			assert.Empty(t, resp.Items)
			cr.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("item not in cart", func(t *testing.T) {
		cr := new(MockCartRepository)
		cr.On("SetQuantity", ctx, int64(2), int64(5), 1).Return(cartRepo.ErrItemNotFound)

		_, err := cart.NewService(cr, new(MockProductRepository), logger.NewNop()).
			UpdateItem(ctx, 2, 5, &models.UpdateItemRequest{Quantity: 1})
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})
}

func TestService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	cr := new(MockCartRepository)
	cr.On("RemoveItem", ctx, int64(2), int64(9)).Return(cartRepo.ErrItemNotFound)
	cr.On("Clear", ctx, int64(2)).Return(nil)

	svc := cart.NewService(cr, new(MockProductRepository), logger.NewNop())

	_, err := svc.RemoveItem(ctx, 2, 9)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
	assert.NoError(t, svc.Clear(ctx, 2))
}
