package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Mila-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
	location    *time.Location
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований.
// location - часовой пояс салона, в котором сравниваются даты
func NewService(
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
	location *time.Location,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
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

// GetByID получает бронирование по ID.
// Клиент видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, requester models.Requester) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, requester.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() && !booking.BelongsTo(requester.UserID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requester.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает бронирования клиента для личного кабинета.
// Сначала предстоящие по возрастанию времени, затем прошедшие и отменённые
// от новых к старым
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.sortUpcomingFirst(bookings)

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCalendar получает бронирования для календаря администратора
// с фильтрацией по периоду, мастеру и статусу
func (s *Service) GetCalendar(ctx context.Context, req *models.GetCalendarRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCalendar: fetching bookings from=%v to=%v stylist=%v status=%v", req.From, req.To, req.StylistID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCalendar: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCalendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCalendar: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование клиентом.
// Можно отменить только своё pending/confirmed бронирование, которое ещё не началось
func (s *Service) Cancel(ctx context.Context, bookingID int64, clientID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by client=%d", bookingID, clientID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if !booking.BelongsTo(clientID) {
		s.logger.Warn("Cancel: access denied for client=%d to booking id=%d", clientID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelledByClient(s.now().In(s.location)) {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.updateStatus(ctx, "Cancel", booking, domain.StatusCancelled); err != nil {
		if errors.Is(err, errStatusChanged) {
			return ErrCannotCancel
		}
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus меняет статус бронирования по таблице жизненного цикла.
// Доступно только администратору (проверяется на уровне маршрутов)
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d", booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.updateStatus(ctx, "UpdateStatus", booking, newStatus); err != nil {
		if errors.Is(err, errStatusChanged) {
			return nil, fmt.Errorf("%w: %s changed concurrently", ErrInvalidTransition, booking.Status)
		}
		return nil, err
	}
	booking.Status = newStatus

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, method string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// updateStatus меняет статус, только если в БД он всё ещё равен прочитанному
func (s *Service) updateStatus(ctx context.Context, method string, booking *domain.Booking, status domain.BookingStatus) error {
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, status); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			s.logger.Warn("%s: booking id=%d is no longer %s", method, booking.ID, booking.Status)
			return errStatusChanged
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, booking.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	s.metrics.IncBookingTransition(string(status))
	return nil
}

// sortUpcomingFirst предстоящие активные бронирования идут первыми
func (s *Service) sortUpcomingFirst(bookings []*domain.Booking) {
	now := s.now().In(s.location)

	type keyed struct {
		booking  *domain.Booking
		startsAt time.Time
		upcoming bool
	}
	items := make([]keyed, len(bookings))
	for i, b := range bookings {
		startsAt, err := b.StartsAt(s.location)
		if err != nil {
			startsAt = b.BookingDate
		}
		items[i] = keyed{
			booking:  b,
			startsAt: startsAt,
			upcoming: !b.Status.IsTerminal() && startsAt.After(now),
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.upcoming != b.upcoming {
			return a.upcoming
		}
		if a.upcoming {
			return a.startsAt.Before(b.startsAt)
		}
		return a.startsAt.After(b.startsAt)
	})

	for i := range items {
		bookings[i] = items[i].booking
	}
}
