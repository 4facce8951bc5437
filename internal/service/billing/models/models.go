package models

import (
	"errors"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// FilterAll значение фильтра без ограничения по статусу
const FilterAll = "all"

var (
	// ErrInvalidFilter возвращается при неизвестном фильтре
	ErrInvalidFilter = errors.New("invalid invoice filter")
)

// InvoiceResponse счёт для страницы биллинга
type InvoiceResponse struct {
	ID         int64   `json:"id"`
	Number     string  `json:"number"`
	BookingID  int64   `json:"bookingId"`
	ClientName string  `json:"clientName"`
	ServiceID  *int64  `json:"serviceId,omitempty"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// InvoiceListResponse список счетов
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// SummaryResponse итоги по счетам
type SummaryResponse struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Count   int     `json:"count"`
}

// SyncResponse результат синхронизации счетов с бронированиями
type SyncResponse struct {
	Created int `json:"created"`
}

// ParseStatusFilter разбирает фильтр all|paid|pending; пустая строка означает all
func ParseStatusFilter(filter string) (*domain.InvoiceStatus, error) {
	if filter == "" || filter == FilterAll {
		return nil, nil
	}
	status := domain.InvoiceStatus(filter)
	if !status.IsValid() {
		return nil, ErrInvalidFilter
	}
	return &status, nil
}

// FromDomainInvoice конвертирует domain модель в DTO
func FromDomainInvoice(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		BookingID:  inv.BookingID,
		ClientName: inv.ClientName,
		ServiceID:  inv.ServiceID,
		Date:       inv.Date.Format(domain.DateFormat),
		Amount:     inv.Amount,
		Status:     string(inv.Status),
	}
}

// FromDomainInvoiceList конвертирует список счетов
func FromDomainInvoiceList(invoices []*domain.Invoice) *InvoiceListResponse {
	resp := &InvoiceListResponse{Invoices: make([]InvoiceResponse, 0, len(invoices))}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, FromDomainInvoice(inv))
	}
	return resp
}

// FromDomainSummary конвертирует итоги
func FromDomainSummary(s *domain.InvoiceSummary) *SummaryResponse {
	return &SummaryResponse{
		Total:   s.Total,
		Paid:    s.Paid,
		Pending: s.Pending,
		Count:   s.Count,
	}
}
