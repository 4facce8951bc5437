package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: service %d selected twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateGuest проверяет данные гостевой записи. Вызывается только для администратора
func validateGuest(req *Request) error {
	if req.GuestName == nil || strings.TrimSpace(*req.GuestName) == "" {
		return fmt.Errorf("%w: guestName is required for guest bookings", ErrInvalidInput)
	}

	if utf8.RuneCountInString(*req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName must be at most %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	return nil
}

// validateDate проверяет, что дата строго после сегодня и в пределах горизонта
func validateDate(date, today time.Time) error {
	if !domain.IsFutureDate(date, today) {
		return ErrInvalidDate
	}

	if !domain.IsWithinHorizon(date, today) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.AdvanceBookingDays)
	}

	return nil
}

// resolveServices проверяет, что найдены все услуги и стилист их оказывает
func resolveServices(stylist *domain.Stylist, ids []int64, found []*domain.Service) ([]*domain.Service, error) {
	byID := make(map[int64]*domain.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	result := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		service, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		if !stylist.OffersService(id) {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotOffered, id)
		}
		result = append(result, service)
	}

	return result, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
