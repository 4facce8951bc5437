package domain

import (
	"fmt"
	"time"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
)

// IsValid returns true for a known invoice status
func (s InvoiceStatus) IsValid() bool {
	return s == InvoicePaid || s == InvoicePending
}

// Toggled returns the opposite payment state
func (s InvoiceStatus) Toggled() InvoiceStatus {
	if s == InvoicePaid {
		return InvoicePending
	}
	return InvoicePaid
}

// Invoice is a bill derived from a confirmed or completed booking
type Invoice struct {
	ID         int64
	Number     string
	BookingID  int64
	ClientName string
	ServiceID  *int64
	Date       time.Time
	Amount     float64
	Status     InvoiceStatus
	CreatedAt  time.Time
}

// InvoiceNumber formats the invoice number for a booking
func InvoiceNumber(bookingID int64) string {
	return fmt.Sprintf("%s%06d", InvoiceNumberPrefix, bookingID)
}

// InvoiceStatusFor maps a booking status to the invoice state.
// Only revenue bookings are invoiced.
func InvoiceStatusFor(status BookingStatus) (InvoiceStatus, bool) {
	switch status {
	case StatusCompleted:
		return InvoicePaid, true
	case StatusConfirmed:
		return InvoicePending, true
	default:
		return "", false
	}
}

// InvoiceSummary totals for the billing page
type InvoiceSummary struct {
	Total   float64
	Paid    float64
	Pending float64
	Count   int
}
