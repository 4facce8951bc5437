package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
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

// resolveServices проверяет, что найдены все услуги и стилист их оказывает.
// Возвращает услуги в порядке запроса
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
