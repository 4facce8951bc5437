package create_booking

import (
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RequesterID   int64           // ID пользователя из сессии
	RequesterRole domain.UserRole // Роль пользователя из сессии
	StylistID     int64
	ServiceIDs    []int64          // Пусто - общая консультация
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	Notes         *string

	// Запись гостя без аккаунта (только администратор)
	GuestName  *string
	GuestPhone *string
}

// IsGuestBooking true, если в запросе переданы данные гостя
func (r *Request) IsGuestBooking() bool {
	return r.GuestName != nil || r.GuestPhone != nil
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	StylistID       int64
	ClientID        *int64
	ServiceIDs      []int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string
	TotalPrice      float64
	Notes           *string
	GuestName       *string
	GuestPhone      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
