package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения слотов стилиста на дату
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс салона, в котором определяется "сегодня"
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	metrics Metrics,
	logger Logger,
	location *time.Location,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: stylist=%d, services=%v, date=%s",
		req.StylistID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация дня относительно сегодняшней даты салона
	today := domain.DateOf(uc.timeProvider.Now(), uc.location)
	if err := validateDate(req.Date, today); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем стилиста
	stylist, err := uc.catalogRepo.GetStylistByID(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			uc.logger.Warn("GetAvailableSlots: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	// 4. Получаем выбранные услуги и считаем длительность
	services, err := uc.loadServices(ctx, stylist, req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	duration, price := domain.BookingTotals(services)

	// 5. Расписание стилиста
	schedule, err := uc.scheduleRepo.GetByStylistID(ctx, req.StylistID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !domain.IsWorkingDay(schedule, int(req.Date.Weekday())) {
		uc.logger.Info("GetAvailableSlots: stylist id=%d does not work on %s", req.StylistID, req.Date.Format(domain.DateFormat))
		uc.metrics.ObserveSlotsServed(0)
		return uc.response(req, duration, price, nil), nil
	}

	// 6. Бронирования стилиста на эту дату
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
		StylistID: &req.StylistID,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	candidates, err := domain.GenerateSlots(schedule, req.Date, duration, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.metrics.ObserveSlotsServed(len(candidates))
	uc.logger.Info("GetAvailableSlots: generated %d slots for stylist=%d, date=%s, duration=%d",
		len(candidates), req.StylistID, req.Date.Format(domain.DateFormat), duration)

	return uc.response(req, duration, price, candidates), nil
}

func (uc *UseCase) loadServices(ctx context.Context, stylist *domain.Stylist, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := uc.catalogRepo.ListServices(ctx, ids)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get services %v: %v", ids, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	services, err := resolveServices(stylist, ids, found)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	return services, nil
}

func (uc *UseCase) response(req *Request, duration int, price float64, candidates []domain.CandidateSlot) *Response {
	slots := make([]Slot, len(candidates))
	for i, c := range candidates {
		slots[i] = Slot{
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			Available: c.Available,
		}
	}

	return &Response{
		Date:            req.Date,
		StylistID:       req.StylistID,
		ServiceIDs:      req.ServiceIDs,
		DurationMinutes: duration,
		TotalPrice:      price,
		Slots:           slots,
	}
}
