package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Mila-BookingService/internal/service/schedule/models"
)

// Service сервис недельного расписания мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	stylistRepo  StylistRepository
	txManager    TransactionManager
	logger       Logger
	location     *time.Location
	now          func() time.Time
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	stylistRepo StylistRepository,
	txManager TransactionManager,
	logger Logger,
	location *time.Location,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		stylistRepo:  stylistRepo,
		txManager:    txManager,
		logger:       logger,
		location:     location,
		now:          time.Now,
	}
}

// WithClock подменяет источник текущего времени
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetStylistSchedule возвращает недельное расписание мастера
func (s *Service) GetStylistSchedule(ctx context.Context, stylistID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetStylistSchedule: fetching schedule for stylist=%d", stylistID)

	schedule, err := s.loadSchedule(ctx, "GetStylistSchedule", stylistID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSchedule(stylistID, schedule), nil
}

// UpdateStylistSchedule полностью заменяет недельное расписание мастера.
// Расписание валидируется до записи: день недели 0..6 не более одного раза,
// время HH:MM, открытие раньше закрытия для рабочих дней
func (s *Service) UpdateStylistSchedule(ctx context.Context, stylistID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateStylistSchedule: replacing schedule for stylist=%d with %d days", stylistID, len(req.Days))

	schedule := req.ToDomain()
	if err := domain.ValidateWeeklySchedule(schedule); err != nil {
		s.logger.Warn("UpdateStylistSchedule: validation failed for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if err := s.ensureStylist(ctx, "UpdateStylistSchedule", stylistID); err != nil {
		return nil, err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.Replace(ctx, stylistID, schedule)
	})
	if err != nil {
		s.logger.Error("UpdateStylistSchedule: failed to replace schedule for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: UpdateStylistSchedule - replace: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStylistSchedule: successfully replaced schedule for stylist=%d", stylistID)
	return models.FromDomainSchedule(stylistID, schedule), nil
}

// GetAvailableDates возвращает рабочие дни мастера на горизонте записи,
// начиная с завтрашнего дня
func (s *Service) GetAvailableDates(ctx context.Context, stylistID int64) (*models.AvailableDatesResponse, error) {
	s.logger.Info("GetAvailableDates: fetching dates for stylist=%d", stylistID)

	schedule, err := s.loadSchedule(ctx, "GetAvailableDates", stylistID)
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now(), s.location)
	dates := domain.AvailableDates(schedule, today, domain.AdvanceBookingDays)

	s.logger.Info("GetAvailableDates: %d dates for stylist=%d", len(dates), stylistID)
	return models.FromDomainDates(stylistID, dates), nil
}

func (s *Service) loadSchedule(ctx context.Context, method string, stylistID int64) ([]domain.WeeklyAvailability, error) {
	if err := s.ensureStylist(ctx, method, stylistID); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByStylistID(ctx, stylistID)
	if err != nil {
		s.logger.Error("%s: repository error for stylist=%d: %v", method, stylistID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return schedule, nil
}

func (s *Service) ensureStylist(ctx context.Context, method string, stylistID int64) error {
	if _, err := s.stylistRepo.GetStylistByID(ctx, stylistID); err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			s.logger.Warn("%s: stylist id=%d not found", method, stylistID)
			return ErrStylistNotFound
		}
		s.logger.Error("%s: failed to get stylist id=%d: %v", method, stylistID, err)
		return fmt.Errorf("%w: %s - get stylist: %v", ErrInternal, method, err)
	}
	return nil
}
