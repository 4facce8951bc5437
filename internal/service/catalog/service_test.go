package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Mila-BookingService/internal/service/catalog"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetStylistByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Stylist)
	return s, args.Error(1)
}

func (m *MockCatalogRepository) ListStylists(ctx context.Context) ([]*domain.Stylist, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]*domain.Stylist)
	return s, args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]*domain.ServiceCategory, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*domain.ServiceCategory)
	return c, args.Error(1)
}

func (m *MockCatalogRepository) ListServices(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	args := m.Called(ctx, ids)
	s, _ := args.Get(0).([]*domain.Service)
	return s, args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetByStylistID(ctx context.Context, stylistID int64) ([]domain.WeeklyAvailability, error) {
	args := m.Called(ctx, stylistID)
	s, _ := args.Get(0).([]domain.WeeklyAvailability)
	return s, args.Error(1)
}

func TestService_ListStylists(t *testing.T) {
	ctx := context.Background()
	cr, sr := new(MockCatalogRepository), new(MockScheduleRepository)

	cr.On("ListStylists", ctx).Return([]*domain.Stylist{
		{ID: 1, Name: "Camila", ServiceIDs: []int64{1, 2}},
		{ID: 2, Name: "Valentina"},
	}, nil)
	sr.On("GetByStylistID", ctx, int64(1)).Return([]domain.WeeklyAvailability{
		{Weekday: 1, Opens: "09:00", Closes: "18:00", IsOpen: true},
	}, nil)
	sr.On("GetByStylistID", ctx, int64(2)).Return(nil, nil)

	resp, err := catalog.NewService(cr, sr, logger.NewNop()).ListStylists(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Stylists, 2)

	assert.Equal(t, "Camila", resp.Stylists[0].Name)
	assert.Len(t, resp.Stylists[0].Schedule, 1)
	assert.Equal(t, []int64{}, resp.Stylists[1].ServiceIDs)
	assert.Empty(t, resp.Stylists[1].Schedule)
}

func TestService_GetStylist(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		cr := new(MockCatalogRepository)
		cr.On("GetStylistByID", ctx, int64(9)).Return(nil, catalogRepo.ErrStylistNotFound)

		_, err := catalog.NewService(cr, new(MockScheduleRepository), logger.NewNop()).GetStylist(ctx, 9)
		assert.ErrorIs(t, err, catalog.ErrStylistNotFound)
	})

	t.Run("schedule failure", func(t *testing.T) {
		cr, sr := new(MockCatalogRepository), new(MockScheduleRepository)
		cr.On("GetStylistByID", ctx, int64(1)).Return(&domain.Stylist{ID: 1}, nil)
		sr.On("GetByStylistID", ctx, int64(1)).Return(nil, errors.New("timeout"))

		_, err := catalog.NewService(cr, sr, logger.NewNop()).GetStylist(ctx, 1)
		assert.ErrorIs(t, err, catalog.ErrInternal)
	})
}

func TestService_ListServices_GroupsByCategory(t *testing.T) {
	ctx := context.Background()
	cr := new(MockCatalogRepository)

	cr.On("ListCategories", ctx).Return([]*domain.ServiceCategory{
		{ID: 1, Slug: "hair", Name: "Hair"},
		{ID: 2, Slug: "nails", Name: "Nails"},
		{ID: 3, Slug: "makeup", Name: "Makeup"},
	}, nil)
	cr.On("ListServices", ctx, []int64(nil)).Return([]*domain.Service{
		{ID: 1, CategoryID: 1, Name: "Cut", DurationMinutes: 60, Price: 65},
		{ID: 2, CategoryID: 2, Name: "Manicure", DurationMinutes: 45, Price: 35},
		{ID: 3, CategoryID: 1, Name: "Color", DurationMinutes: 120, Price: 150},
	}, nil)

	resp, err := catalog.NewService(cr, new(MockScheduleRepository), logger.NewNop()).ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Categories, 3)

	assert.Len(t, resp.Categories[0].Services, 2)
	assert.Equal(t, "Color", resp.Categories[0].Services[1].Name)
	assert.Len(t, resp.Categories[1].Services, 1)
	assert.NotNil(t, resp.Categories[2].Services)
	assert.Empty(t, resp.Categories[2].Services)
}
