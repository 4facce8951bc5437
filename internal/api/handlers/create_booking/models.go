package create_booking

import (
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	createBooking "github.com/m04kA/Mila-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Mila-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StylistID   int64   `json:"stylistId"`
	ServiceIDs  []int64 `json:"serviceIds"`
	BookingDate string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	Notes       *string `json:"notes,omitempty"`
	GuestName   *string `json:"guestName,omitempty"`
	GuestPhone  *string `json:"guestPhone,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	StylistID       int64   `json:"stylistId"`
	ClientID        *int64  `json:"clientId,omitempty"`
	ServiceIDs      []int64 `json:"serviceIds"`
	BookingDate     string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`
	GuestName       *string `json:"guestName,omitempty"`
	GuestPhone      *string `json:"guestPhone,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Возвращает errInvalidDate или errInvalidTime при ошибке разбора
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64, role domain.UserRole) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		RequesterID:   userID,
		RequesterRole: role,
		StylistID:     r.StylistID,
		ServiceIDs:    r.ServiceIDs,
		Date:          bookingDate,
		StartTime:     startTime,
		Notes:         r.Notes,
		GuestName:     r.GuestName,
		GuestPhone:    r.GuestPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	serviceIDs := resp.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return &BookingResponse{
		ID:              resp.ID,
		StylistID:       resp.StylistID,
		ClientID:        resp.ClientID,
		ServiceIDs:      serviceIDs,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		GuestName:       resp.GuestName,
		GuestPhone:      resp.GuestPhone,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
