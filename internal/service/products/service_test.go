package products_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	productRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/product"
	"github.com/m04kA/Mila-BookingService/internal/service/products"
	"github.com/m04kA/Mila-BookingService/internal/service/products/models"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, category *string) ([]*domain.Product, error) {
	args := m.Called(ctx, category)
	p, _ := args.Get(0).([]*domain.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*domain.Product)
	return created, args.Error(1)
}

func (m *MockProductRepository) UpdateStock(ctx context.Context, id int64, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("category filter", func(t *testing.T) {
		repo := new(MockProductRepository)
		category := "nails"
		repo.On("List", ctx, &category).Return([]*domain.Product{
			{ID: 3, Name: "Cuticle Oil", Category: "nails", StockQuantity: 0},
		}, nil)

		resp, err := products.NewService(repo, logger.NewNop()).List(ctx, " nails ")
		require.NoError(t, err)
		require.Len(t, resp.Products, 1)
		assert.False(t, resp.Products[0].InStock)
	})

	t.Run("no filter", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("List", ctx, (*string)(nil)).Return(nil, nil)

		resp, err := products.NewService(repo, logger.NewNop()).List(ctx, "")
		require.NoError(t, err)
		assert.NotNil(t, resp.Products)
	})
}

func TestService_AddCustom(t *testing.T) {
	ctx := context.Background()

	t.Run("creates custom product", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Product) bool {
			return p.IsCustom && p.Name == "Argan Serum" && p.Category == models.DefaultCategory
		})).Return(&domain.Product{ID: 9, Name: "Argan Serum", Brand: "Mila", StockQuantity: 4, IsCustom: true}, nil)

		resp, err := products.NewService(repo, logger.NewNop()).AddCustom(ctx, &models.CreateProductRequest{
			Name:          " Argan Serum ",
			Brand:         "Mila",
			Price:         28,
			StockQuantity: 4,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
		assert.True(t, resp.InStock)
		assert.True(t, resp.IsCustom)
	})

	invalid := []struct {
		name string
		req  models.CreateProductRequest
		err  error
	}{
		{"missing name", models.CreateProductRequest{Brand: "Mila", Price: 1}, models.ErrNameRequired},
		{"missing brand", models.CreateProductRequest{Name: "Serum", Price: 1}, models.ErrBrandRequired},
		{"negative price", models.CreateProductRequest{Name: "Serum", Brand: "Mila", Price: -1}, models.ErrNegativePrice},
		{"negative stock", models.CreateProductRequest{Name: "Serum", Brand: "Mila", StockQuantity: -2}, models.ErrNegativeStock},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.req.Validate(), tc.err)

			repo := new(MockProductRepository)
			_, err := products.NewService(repo, logger.NewNop()).AddCustom(ctx, &tc.req)
			assert.ErrorIs(t, err, products.ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_UpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("zero is allowed", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("UpdateStock", ctx, int64(2), 0).Return(nil)

		err := products.NewService(repo, logger.NewNop()).UpdateStock(ctx, 2, &models.UpdateStockRequest{StockQuantity: 0})
		assert.NoError(t, err)
	})

	t.Run("negative rejected", func(t *testing.T) {
		repo := new(MockProductRepository)

		err := products.NewService(repo, logger.NewNop()).UpdateStock(ctx, 2, &models.UpdateStockRequest{StockQuantity: -1})
		assert.ErrorIs(t, err, products.ErrInvalidInput)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("UpdateStock", ctx, int64(99), 5).Return(productRepo.ErrProductNotFound)

		err := products.NewService(repo, logger.NewNop()).UpdateStock(ctx, 99, &models.UpdateStockRequest{StockQuantity: 5})
		assert.ErrorIs(t, err, products.ErrProductNotFound)
	})
}
