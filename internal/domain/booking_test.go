package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/pkg/ptr"
	pkgtypes "github.com/m04kA/Mila-BookingService/pkg/types"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	allowed := map[domain.BookingStatus][]domain.BookingStatus{
		domain.StatusPending:   {domain.StatusConfirmed, domain.StatusCancelled, domain.StatusNoShow},
		domain.StatusConfirmed: {domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow},
	}

	for _, from := range domain.AllStatuses {
		for _, to := range domain.AllStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, domain.StatusCompleted.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
	assert.True(t, domain.StatusNoShow.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.BookingStatus("in_progress").IsValid())
}

func TestBooking_CanBeCancelledByClient(t *testing.T) {
	now := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status domain.BookingStatus
		date   time.Time
		start  string
		want   bool
	}{
		{name: "pending tomorrow", status: domain.StatusPending, date: now.AddDate(0, 0, 1), start: "09:00", want: true},
		{name: "confirmed later today", status: domain.StatusConfirmed, date: now, start: "15:00", want: true},
		{name: "confirmed earlier today", status: domain.StatusConfirmed, date: now, start: "10:00", want: false},
		{name: "starts right now", status: domain.StatusConfirmed, date: now, start: "12:00", want: false},
		{name: "completed", status: domain.StatusCompleted, date: now.AddDate(0, 0, 1), start: "09:00", want: false},
		{name: "already cancelled", status: domain.StatusCancelled, date: now.AddDate(0, 0, 1), start: "09:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &domain.Booking{
				ClientID:    ptr.Ptr(int64(7)),
				BookingDate: domain.DateOf(tt.date, time.UTC),
				StartTime:   pkgtypes.TimeString(tt.start),
				Status:      tt.status,
			}
			assert.Equal(t, tt.want, b.CanBeCancelledByClient(now))
		})
	}
}

func TestBooking_Ownership(t *testing.T) {
	guest := &domain.Booking{GuestName: ptr.Ptr("Elena Rodriguez")}
	assert.True(t, guest.IsGuest())
	assert.False(t, guest.BelongsTo(1))

	own := &domain.Booking{ClientID: ptr.Ptr(int64(1)), ServiceIDs: []int64{4, 2}}
	assert.True(t, own.BelongsTo(1))
	assert.False(t, own.BelongsTo(2))
	assert.Equal(t, int64(4), *own.FirstServiceID())
	assert.Nil(t, guest.FirstServiceID())
}

func TestBookingTotals(t *testing.T) {
	duration, price := domain.BookingTotals(nil)
	assert.Equal(t, domain.GeneralConsultationMinutes, duration)
	assert.Zero(t, price)

	duration, price = domain.BookingTotals([]*domain.Service{
		{DurationMinutes: 60, Price: 65},
		{DurationMinutes: 45, Price: 75},
	})
	assert.Equal(t, 105, duration)
	assert.InDelta(t, 140.0, price, 0.001)
}

func TestInvoiceHelpers(t *testing.T) {
	assert.Equal(t, "INV-000042", domain.InvoiceNumber(42))

	status, ok := domain.InvoiceStatusFor(domain.StatusCompleted)
	assert.True(t, ok)
	assert.Equal(t, domain.InvoicePaid, status)

	status, ok = domain.InvoiceStatusFor(domain.StatusConfirmed)
	assert.True(t, ok)
	assert.Equal(t, domain.InvoicePending, status)

	_, ok = domain.InvoiceStatusFor(domain.StatusPending)
	assert.False(t, ok)

	assert.Equal(t, domain.InvoicePending, domain.InvoicePaid.Toggled())
	assert.Equal(t, domain.InvoicePaid, domain.InvoicePending.Toggled())
}
