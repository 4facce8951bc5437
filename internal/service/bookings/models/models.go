package models

import (
	"errors"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// Requester пользователь, от имени которого выполняется запрос
type Requester struct {
	UserID int64
	Role   domain.UserRole
}

// IsAdmin true для администратора салона
func (r Requester) IsAdmin() bool {
	return r.Role == domain.RoleAdmin
}

// UpdateStatusRequest запрос администратора на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetClientBookingsRequest бронирования клиента для личного кабинета
type GetClientBookingsRequest struct {
	ClientID int64
	Status   *string
}

// GetCalendarRequest фильтр календаря администратора.
// Даты в формате YYYY-MM-DD, все поля опциональны
type GetCalendarRequest struct {
	From      *string
	To        *string
	StylistID *int64
	Status    *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCalendarRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{StylistID: r.StylistID}

	if r.From != nil {
		from, err := ParseDate(*r.From)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &from
	}
	if r.To != nil {
		to, err := ParseDate(*r.To)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &to
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return filter, ErrInvalidDate
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	StylistID   int64   `json:"stylistId"`
	ClientID    *int64  `json:"clientId,omitempty"`
	ServiceIDs  []int64 `json:"serviceIds"`
	BookingDate string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"totalPrice"`
	Notes       *string `json:"notes,omitempty"`
	GuestName   *string `json:"guestName,omitempty"`
	GuestPhone  *string `json:"guestPhone,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	serviceIDs := b.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	resp := &BookingResponse{
		ID:          b.ID,
		StylistID:   b.StylistID,
		ClientID:    b.ClientID,
		ServiceIDs:  serviceIDs,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Status:      string(b.Status),
		TotalPrice:  b.TotalPrice,
		Notes:       b.Notes,
		GuestName:   b.GuestName,
		GuestPhone:  b.GuestPhone,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
