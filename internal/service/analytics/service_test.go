package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/internal/service/analytics"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *MockBookingRepository) GetRecent(ctx context.Context, limit int) ([]*domain.Booking, error) {
	args := m.Called(ctx, limit)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
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

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListAll(ctx context.Context) ([]*domain.Review, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]*domain.Review)
	return r, args.Error(1)
}

func newService(br *MockBookingRepository, cr *MockCatalogRepository, rr *MockReviewRepository) *analytics.Service {
	return analytics.NewService(br, cr, rr, logger.NewNop(), time.UTC).
		WithClock(func() time.Time { return today.Add(15 * time.Hour) })
}

func TestService_Dashboard(t *testing.T) {
	ctx := context.Background()
	br := new(MockBookingRepository)
	bookings := fixtureBookings()
	br.On("GetWithFilter", ctx, domain.BookingsFilter{}).Return(bookings, nil)
	br.On("GetRecent", ctx, domain.RecentBookingsLimit).Return(bookings[:2], nil)

	resp, err := newService(br, new(MockCatalogRepository), new(MockReviewRepository)).Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalBookings)
	assert.Equal(t, 1, resp.TodayBookings)
	assert.Len(t, resp.RecentBookings, 2)
}

func TestService_Analytics(t *testing.T) {
	ctx := context.Background()
	br, cr, rr := new(MockBookingRepository), new(MockCatalogRepository), new(MockReviewRepository)
	br.On("GetWithFilter", ctx, domain.BookingsFilter{}).Return(fixtureBookings(), nil)
	rr.On("ListAll", ctx).Return(fixtureReviews, nil)
	cr.On("ListServices", ctx, []int64(nil)).Return(fixtureServices, nil)
	cr.On("ListStylists", ctx).Return(fixtureStylists, nil)
	cr.On("ListCategories", ctx).Return(fixtureCategories, nil)

	resp, err := newService(br, cr, rr).Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.BookingsThisWeek)
	require.NotNil(t, resp.TopStylist)
	assert.Equal(t, "Camila", resp.TopStylist.Name)
	assert.Len(t, resp.RevenueByCategory, 3)
	assert.Len(t, resp.BookingsByWeekday, 7)
}

func TestService_Analytics_RepositoryError(t *testing.T) {
	ctx := context.Background()
	br, rr := new(MockBookingRepository), new(MockReviewRepository)
	br.On("GetWithFilter", ctx, domain.BookingsFilter{}).Return(nil, nil)
	rr.On("ListAll", ctx).Return(nil, errors.New("timeout"))

	_, err := newService(br, new(MockCatalogRepository), rr).Analytics(ctx)
	assert.ErrorIs(t, err, analytics.ErrInternal)
}
