package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Mila-BookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
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
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	location *time.Location,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
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

// Execute выполняет use case создания бронирования.
// Проверка слота и вставка выполняются в сериализуемой транзакции,
// бронирования дня читаются с блокировкой FOR UPDATE
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, stylist=%d, services=%v, date=%s, time=%s",
		req.RequesterID, req.StylistID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем, для кого запись: клиент записывает только себя
	var clientID *int64
	if req.IsGuestBooking() {
		if req.RequesterRole != domain.RoleAdmin {
			uc.logger.Warn("CreateBooking: user=%d with role=%s tried to book for a guest", req.RequesterID, req.RequesterRole)
			return nil, ErrGuestNotAllowed
		}
		if err := validateGuest(req); err != nil {
			uc.logger.Warn("CreateBooking: guest validation failed: %v", err)
			return nil, err
		}
	} else {
		id := req.RequesterID
		clientID = &id
	}

	// 3. Получаем стилиста и выбранные услуги
	stylist, err := uc.catalogRepo.GetStylistByID(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			uc.logger.Warn("CreateBooking: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateBooking: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	services, err := uc.loadServices(ctx, stylist, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// 4. Суммарная длительность и цена
	duration, price := domain.BookingTotals(services)

	// 5. Валидация дня
	today := domain.DateOf(uc.timeProvider.Now(), uc.location)
	if err := validateDate(req.Date, today); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		if errors.Is(err, ErrDateTooFarInFuture) {
			uc.metrics.IncBookingRejected(rejectTooFar)
		} else {
			uc.metrics.IncBookingRejected(rejectInvalidDate)
		}
		return nil, err
	}

	serviceIDs := req.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	var result *domain.Booking

	// 6. Проверка слота и вставка в сериализуемой транзакции
	reserve := func(txCtx context.Context) error {
		schedule, err := uc.scheduleRepo.GetByStylistID(txCtx, req.StylistID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule for stylist id=%d: %v", req.StylistID, err)
			return fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
		}

		// 6.1. Бронирования стилиста за день с блокировкой
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
			StylistID: &req.StylistID,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 6.2. Запрошенное начало должно совпасть со свободным окном
		slots, err := domain.GenerateSlots(schedule, req.Date, duration, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		slot := domain.FindSlot(slots, req.StartTime)
		if slot == nil {
			uc.logger.Warn("CreateBooking: no %d-minute window starts at %s on %s for stylist id=%d",
				duration, req.StartTime, req.Date.Format(domain.DateFormat), req.StylistID)
			uc.metrics.IncBookingRejected(rejectInvalidSlot)
			return ErrInvalidTimeSlot
		}
		if !slot.Available {
			uc.logger.Warn("CreateBooking: slot %s-%s on %s is taken for stylist id=%d",
				slot.StartTime, slot.EndTime, req.Date.Format(domain.DateFormat), req.StylistID)
			uc.metrics.IncBookingRejected(rejectSlotTaken)
			return ErrSlotNotAvailable
		}

		// 6.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			StylistID:   req.StylistID,
			ClientID:    clientID,
			ServiceIDs:  serviceIDs,
			BookingDate: req.Date,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			Status:      domain.StatusPending,
			TotalPrice:  price,
			Notes:       trimmed(req.Notes),
			GuestName:   trimmed(req.GuestName),
			GuestPhone:  trimmed(req.GuestPhone),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	}

	// 7. Проигравшая конкурентной записи транзакция повторяется: на повторе
	// занятый слот виден и запрос получает ErrSlotNotAvailable
	for attempt := 1; ; attempt++ {
		err = uc.txManager.DoSerializable(ctx, reserve)
		if err == nil || !txmanager.IsSerializationFailure(err) {
			break
		}
		if attempt == maxSerializableAttempts {
			uc.logger.Warn("CreateBooking: serialization conflict persisted after %d attempts for stylist id=%d on %s",
				attempt, req.StylistID, req.Date.Format(domain.DateFormat))
			uc.metrics.IncBookingRejected(rejectSlotTaken)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Warn("CreateBooking: serialization conflict on attempt %d for stylist id=%d, retrying", attempt, req.StylistID)
	}
	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		StylistID:       result.StylistID,
		ClientID:        result.ClientID,
		ServiceIDs:      result.ServiceIDs,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: duration,
		Status:          string(result.Status),
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		GuestName:       result.GuestName,
		GuestPhone:      result.GuestPhone,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) loadServices(ctx context.Context, stylist *domain.Stylist, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := uc.catalogRepo.ListServices(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get services %v: %v", ids, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	services, err := resolveServices(stylist, ids, found)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		if errors.Is(err, ErrServiceNotOffered) {
			uc.metrics.IncBookingRejected(rejectNotOffered)
		}
		return nil, err
	}

	return services, nil
}
