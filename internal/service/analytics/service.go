package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/internal/service/analytics/models"
)

// Service агрегаты для страниц администратора
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	reviewRepo  ReviewRepository
	logger      Logger
	location    *time.Location
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	reviewRepo ReviewRepository,
	logger Logger,
	location *time.Location,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
		location:    location,
		now:         time.Now,
	}
}

// WithClock подменяет источник текущего времени
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Dashboard показатели главной страницы администратора
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Dashboard: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - bookings: %v", ErrInternal, err)
	}

	recent, err := s.bookingRepo.GetRecent(ctx, domain.RecentBookingsLimit)
	if err != nil {
		s.logger.Error("Dashboard: failed to load recent bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - recent bookings: %v", ErrInternal, err)
	}

	stats := Dashboard(bookings, s.today())
	stats.RecentBookings = recent

	s.logger.Info("Dashboard: total=%d today=%d clients=%d", stats.TotalBookings, stats.TodayBookings, stats.UniqueClients)
	return models.FromDomainDashboard(stats), nil
}

// Analytics агрегаты страницы аналитики
func (s *Service) Analytics(ctx context.Context) (*models.AnalyticsResponse, error) {
	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Analytics: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: Analytics - bookings: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Analytics: failed to load reviews: %v", err)
		return nil, fmt.Errorf("%w: Analytics - reviews: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListServices(ctx, nil)
	if err != nil {
		s.logger.Error("Analytics: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: Analytics - services: %v", ErrInternal, err)
	}

	stylists, err := s.catalogRepo.ListStylists(ctx)
	if err != nil {
		s.logger.Error("Analytics: failed to load stylists: %v", err)
		return nil, fmt.Errorf("%w: Analytics - stylists: %v", ErrInternal, err)
	}

	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("Analytics: failed to load categories: %v", err)
		return nil, fmt.Errorf("%w: Analytics - categories: %v", ErrInternal, err)
	}

	result := Compute(bookings, reviews, services, stylists, categories, s.today())
	return models.FromDomainAnalytics(result), nil
}

func (s *Service) today() time.Time {
	return domain.DateOf(s.now(), s.location)
}
