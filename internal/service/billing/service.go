package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	invoiceRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/invoice"
	"github.com/m04kA/Mila-BookingService/internal/service/billing/models"
)

// invoicedStatuses статусы бронирований, по которым выставляется счёт
var invoicedStatuses = []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCompleted}

// Service счета по бронированиям
type Service struct {
	invoiceRepo InvoiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса биллинга
func NewService(invoiceRepo InvoiceRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// SyncInvoices создает по одному счёту на каждое подтверждённое или
// завершённое бронирование без счёта. Повторный вызов ничего не создаёт
func (s *Service) SyncInvoices(ctx context.Context) (*models.SyncResponse, error) {
	s.logger.Info("SyncInvoices: syncing invoices with bookings")

	created := 0
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		pending, err := s.invoiceRepo.ListUninvoiced(ctx, invoicedStatuses)
		if err != nil {
			return fmt.Errorf("list uninvoiced: %w", err)
		}

		for _, u := range pending {
			status, ok := domain.InvoiceStatusFor(u.Status)
			if !ok {
				continue
			}

			inv := newInvoice(u, status)
			inserted, err := s.invoiceRepo.Create(ctx, inv)
			if err != nil {
				return fmt.Errorf("create invoice for booking %d: %w", u.BookingID, err)
			}
			if inserted {
				created++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("SyncInvoices: %v", err)
		return nil, fmt.Errorf("%w: SyncInvoices - %v", ErrInternal, err)
	}

	s.logger.Info("SyncInvoices: created %d invoices", created)
	return &models.SyncResponse{Created: created}, nil
}

// ListInvoices возвращает счета с фильтром all|paid|pending
func (s *Service) ListInvoices(ctx context.Context, filter string) (*models.InvoiceListResponse, error) {
	status, err := models.ParseStatusFilter(filter)
	if err != nil {
		s.logger.Warn("ListInvoices: invalid filter=%q", filter)
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	invoices, err := s.invoiceRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("ListInvoices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListInvoices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInvoiceList(invoices), nil
}

// Summary возвращает суммы всех, оплаченных и ожидающих оплаты счетов
func (s *Service) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	summary, err := s.invoiceRepo.Summary(ctx)
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSummary(summary), nil
}

// TogglePaid переключает счёт между paid и pending
func (s *Service) TogglePaid(ctx context.Context, invoiceID int64) (*models.InvoiceResponse, error) {
	s.logger.Info("TogglePaid: toggling invoice id=%d", invoiceID)

	var inv *domain.Invoice
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		inv, err = s.invoiceRepo.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}

		next := inv.Status.Toggled()
		if err := s.invoiceRepo.UpdateStatus(ctx, invoiceID, next); err != nil {
			return err
		}
		inv.Status = next
		return nil
	})
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("TogglePaid: invoice id=%d not found", invoiceID)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("TogglePaid: repository error for invoice id=%d: %v", invoiceID, err)
		return nil, fmt.Errorf("%w: TogglePaid - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("TogglePaid: invoice id=%d is now %s", invoiceID, inv.Status)
	resp := models.FromDomainInvoice(inv)
	return &resp, nil
}

func newInvoice(u invoiceRepo.Uninvoiced, status domain.InvoiceStatus) *domain.Invoice {
	inv := &domain.Invoice{
		Number:     domain.InvoiceNumber(u.BookingID),
		BookingID:  u.BookingID,
		ClientName: u.ClientName,
		Date:       u.Date,
		Amount:     u.Amount,
		Status:     status,
	}
	if len(u.ServiceIDs) > 0 {
		serviceID := u.ServiceIDs[0]
		inv.ServiceID = &serviceID
	}
	return inv
}
