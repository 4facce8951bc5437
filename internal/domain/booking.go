package domain

import (
	"time"

	"github.com/m04kA/Mila-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no-show"
)

// AllStatuses lists every booking status in lifecycle order
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// statusTransitions допустимые переходы; терминальные статусы не имеют исходящих
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true when no further transitions are possible
func (s BookingStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// IsRevenue returns true for statuses counted as salon revenue
func (s BookingStatus) IsRevenue() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a reservation of a stylist's time on a given date.
// ClientID is nil for walk-in guests booked by an admin.
type Booking struct {
	ID          int64
	StylistID   int64
	ClientID    *int64
	ServiceIDs  []int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	TotalPrice  float64
	Notes       *string
	GuestName   *string
	GuestPhone  *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsGuest returns true for walk-in bookings without a client account
func (b *Booking) IsGuest() bool {
	return b.ClientID == nil
}

// BelongsTo returns true if the booking was made by the given client
func (b *Booking) BelongsTo(userID int64) bool {
	return b.ClientID != nil && *b.ClientID == userID
}

// StartsAt combines the booking date and start time in loc
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	minutes, err := b.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := b.BookingDate.Date()
	return time.Date(y, m, d, 0, minutes, 0, 0, loc), nil
}

// CanBeCancelledByClient returns true if the client may still cancel:
// the booking is pending or confirmed and starts after now
func (b *Booking) CanBeCancelledByClient(now time.Time) bool {
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return false
	}
	startsAt, err := b.StartsAt(now.Location())
	if err != nil {
		return false
	}
	return startsAt.After(now)
}

// FirstServiceID returns the first selected service, nil for a general consultation
func (b *Booking) FirstServiceID() *int64 {
	if len(b.ServiceIDs) == 0 {
		return nil
	}
	id := b.ServiceIDs[0]
	return &id
}

// BookingsFilter фильтр для календаря администратора
type BookingsFilter struct {
	StartDate *time.Time     // Начало периода включительно (nil - без ограничения)
	EndDate   *time.Time     // Конец периода включительно (nil - без ограничения)
	StylistID *int64         // Фильтр по стилисту
	ClientID  *int64         // Фильтр по клиенту
	Status    *BookingStatus // Фильтр по статусу
}
