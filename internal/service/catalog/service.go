package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Mila-BookingService/internal/service/catalog/models"
)

// Service каталог мастеров и услуг
type Service struct {
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// ListStylists возвращает всех мастеров вместе с расписанием
func (s *Service) ListStylists(ctx context.Context) (*models.StylistListResponse, error) {
	stylists, err := s.catalogRepo.ListStylists(ctx)
	if err != nil {
		s.logger.Error("ListStylists: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStylists - repository error: %v", ErrInternal, err)
	}

	resp := &models.StylistListResponse{Stylists: make([]models.StylistResponse, 0, len(stylists))}
	for _, stylist := range stylists {
		if err := s.attachSchedule(ctx, stylist); err != nil {
			return nil, err
		}
		resp.Stylists = append(resp.Stylists, models.FromDomainStylist(stylist))
	}

	s.logger.Info("ListStylists: fetched %d stylists", len(resp.Stylists))
	return resp, nil
}

// GetStylist возвращает мастера по ID
func (s *Service) GetStylist(ctx context.Context, id int64) (*models.StylistResponse, error) {
	stylist, err := s.catalogRepo.GetStylistByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			s.logger.Warn("GetStylist: stylist id=%d not found", id)
			return nil, ErrStylistNotFound
		}
		s.logger.Error("GetStylist: repository error for stylist id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStylist - repository error: %v", ErrInternal, err)
	}

	if err := s.attachSchedule(ctx, stylist); err != nil {
		return nil, err
	}

	resp := models.FromDomainStylist(stylist)
	return &resp, nil
}

// ListServices возвращает каталог услуг, сгруппированный по категориям
func (s *Service) ListServices(ctx context.Context) (*models.ServicesResponse, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListServices: failed to list categories: %v", err)
		return nil, fmt.Errorf("%w: ListServices - categories: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListServices(ctx, nil)
	if err != nil {
		s.logger.Error("ListServices: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListServices - services: %v", ErrInternal, err)
	}

	return models.GroupServices(categories, services), nil
}

func (s *Service) attachSchedule(ctx context.Context, stylist *domain.Stylist) error {
	schedule, err := s.scheduleRepo.GetByStylistID(ctx, stylist.ID)
	if err != nil {
		s.logger.Error("attachSchedule: failed to load schedule for stylist id=%d: %v", stylist.ID, err)
		return fmt.Errorf("%w: attachSchedule - repository error: %v", ErrInternal, err)
	}
	stylist.Schedule = schedule
	return nil
}
