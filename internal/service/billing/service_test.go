package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	invoiceRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/invoice"
	"github.com/m04kA/Mila-BookingService/internal/service/billing"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) ListUninvoiced(ctx context.Context, statuses []domain.BookingStatus) ([]invoiceRepo.Uninvoiced, error) {
	args := m.Called(ctx, statuses)
	u, _ := args.Get(0).([]invoiceRepo.Uninvoiced)
	return u, args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) (bool, error) {
	args := m.Called(ctx, inv)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) List(ctx context.Context, status *domain.InvoiceStatus) ([]*domain.Invoice, error) {
	args := m.Called(ctx, status)
	l, _ := args.Get(0).([]*domain.Invoice)
	return l, args.Error(1)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*domain.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockInvoiceRepository) Summary(ctx context.Context) (*domain.InvoiceSummary, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.InvoiceSummary)
	return s, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var statuses = []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCompleted}

func TestService_SyncInvoices(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	t.Run("maps booking status to invoice status", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		repo.On("ListUninvoiced", ctx, statuses).Return([]invoiceRepo.Uninvoiced{
			{BookingID: 12, ClientName: "Sofia", ServiceIDs: []int64{3, 4}, Date: date, Amount: 120, Status: domain.StatusCompleted},
			{BookingID: 15, ClientName: "Guest", Date: date, Amount: 0, Status: domain.StatusConfirmed},
		}, nil).Once()

		var created []*domain.Invoice
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Invoice")).
			Run(func(args mock.Arguments) { created = append(created, args.Get(1).(*domain.Invoice)) }).
			Return(true, nil)

		resp, err := billing.NewService(repo, inlineTx{}, logger.NewNop()).SyncInvoices(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Created)

		require.Len(t, created, 2)
		assert.Equal(t, "INV-000012", created[0].Number)
		assert.Equal(t, domain.InvoicePaid, created[0].Status)
		require.NotNil(t, created[0].ServiceID)
		assert.Equal(t, int64(3), *created[0].ServiceID)

		assert.Equal(t, "INV-000015", created[1].Number)
		assert.Equal(t, domain.InvoicePending, created[1].Status)
		assert.Nil(t, created[1].ServiceID)
	})

	t.Run("second run creates nothing", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		repo.On("ListUninvoiced", ctx, statuses).Return([]invoiceRepo.Uninvoiced{
			{BookingID: 12, ClientName: "Sofia", Date: date, Amount: 120, Status: domain.StatusCompleted},
		}, nil).Once()
		repo.On("ListUninvoiced", ctx, statuses).Return([]invoiceRepo.Uninvoiced{}, nil).Once()
		repo.On("Create", ctx, mock.Anything).Return(true, nil).Once()

		svc := billing.NewService(repo, inlineTx{}, logger.NewNop())

		first, err := svc.SyncInvoices(ctx)
		require.NoError(t, err)
		second, err := svc.SyncInvoices(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, first.Created)
		assert.Equal(t, 0, second.Created)
		repo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("concurrent insert is not counted", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		repo.On("ListUninvoiced", ctx, statuses).Return([]invoiceRepo.Uninvoiced{
			{BookingID: 12, Date: date, Status: domain.StatusConfirmed},
		}, nil)
		repo.On("Create", ctx, mock.Anything).Return(false, nil)

		resp, err := billing.NewService(repo, inlineTx{}, logger.NewNop()).SyncInvoices(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Created)
	})

	t.Run("create failure", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		repo.On("ListUninvoiced", ctx, statuses).Return([]invoiceRepo.Uninvoiced{
			{BookingID: 12, Date: date, Status: domain.StatusConfirmed},
		}, nil)
		repo.On("Create", ctx, mock.Anything).Return(false, errors.New("disk full"))

		_, err := billing.NewService(repo, inlineTx{}, logger.NewNop()).SyncInvoices(ctx)
		assert.ErrorIs(t, err, billing.ErrInternal)
	})
}

func TestService_ListInvoices(t *testing.T) {
	ctx := context.Background()
	paid := domain.InvoicePaid

	tests := []struct {
		name   string
		filter string
		status *domain.InvoiceStatus
	}{
		{"empty means all", "", nil},
		{"all", "all", nil},
		{"paid", "paid", &paid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockInvoiceRepository)
			repo.On("List", ctx, tc.status).Return([]*domain.Invoice{}, nil)

			resp, err := billing.NewService(repo, inlineTx{}, logger.NewNop()).ListInvoices(ctx, tc.filter)
			require.NoError(t, err)
			assert.NotNil(t, resp.Invoices)
			repo.AssertExpectations(t)
		})
	}

	t.Run("unknown filter", func(t *testing.T) {
		_, err := billing.NewService(new(MockInvoiceRepository), inlineTx{}, logger.NewNop()).ListInvoices(ctx, "overdue")
		assert.ErrorIs(t, err, billing.ErrInvalidFilter)
	})
}

func TestService_TogglePaid(t *testing.T) {
	ctx := context.Background()

	t.Run("pending becomes paid", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		repo.On("GetByID", ctx, int64(4)).Return(&domain.Invoice{ID: 4, Number: "INV-000004", Status: domain.InvoicePending}, nil)
		repo.On("UpdateStatus", ctx, int64(4), domain.InvoicePaid).Return(nil)

		resp, err := billing.NewService(repo, inlineTx{}, logger.NewNop()).TogglePaid(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Status)
	})

	t.Run("paid becomes pending", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		repo.On("GetByID", ctx, int64(4)).Return(&domain.Invoice{ID: 4, Status: domain.InvoicePaid}, nil)
		repo.On("UpdateStatus", ctx, int64(4), domain.InvoicePending).Return(nil)

		resp, err := billing.NewService(repo, inlineTx{}, logger.NewNop()).TogglePaid(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		repo.On("GetByID", ctx, int64(4)).Return(nil, invoiceRepo.ErrInvoiceNotFound)

		_, err := billing.NewService(repo, inlineTx{}, logger.NewNop()).TogglePaid(ctx, 4)
		assert.ErrorIs(t, err, billing.ErrInvoiceNotFound)
	})
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvoiceRepository)
	repo.On("Summary", ctx).Return(&domain.InvoiceSummary{Total: 300, Paid: 200, Pending: 100, Count: 3}, nil)

	resp, err := billing.NewService(repo, inlineTx{}, logger.NewNop()).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, resp.Total)
	assert.Equal(t, 200.0, resp.Paid)
	assert.Equal(t, 100.0, resp.Pending)
	assert.Equal(t, 3, resp.Count)
}
