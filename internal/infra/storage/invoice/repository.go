package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Mila-BookingService/pkg/psqlbuilder"
)

var invoiceColumns = []string{
	"id", "number", "booking_id", "client_name", "service_id", "invoice_date", "amount", "status", "created_at",
}

// Repository счета, выставленные по бронированиям
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListUninvoiced возвращает бронирования в статусах statuses, по которым ещё нет счёта
func (r *Repository) ListUninvoiced(ctx context.Context, statuses []domain.BookingStatus) ([]Uninvoiced, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusValues := make([]string, len(statuses))
	for i, s := range statuses {
		statusValues[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"b.id",
		"COALESCE(u.name, b.guest_name, 'Guest')",
		"b.service_ids",
		"b.booking_date",
		"b.total_price",
		"b.status",
	).
		From("bookings b").
		LeftJoin("invoices i ON i.booking_id = b.id").
		LeftJoin("users u ON u.id = b.client_id").
		Where(squirrel.Eq{"b.status": statusValues}).
		Where("i.id IS NULL").
		OrderBy("b.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUninvoiced - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUninvoiced - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]Uninvoiced, 0)
	for rows.Next() {
		var u Uninvoiced
		var serviceIDs pq.Int64Array
		if err := rows.Scan(&u.BookingID, &u.ClientName, &serviceIDs, &u.Date, &u.Amount, &u.Status); err != nil {
			return nil, fmt.Errorf("%w: ListUninvoiced - scan row: %v", ErrScanRow, err)
		}
		u.ServiceIDs = []int64(serviceIDs)
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUninvoiced - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Create сохраняет счёт. Если по бронированию счёт уже есть, возвращает false
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns("number", "booking_id", "client_name", "service_id", "invoice_date", "amount", "status").
		Values(inv.Number, inv.BookingID, inv.ClientName, inv.ServiceID, inv.Date.Format(domain.DateFormat), inv.Amount, inv.Status).
		Suffix("ON CONFLICT (booking_id) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &inv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return true, nil
}

// List возвращает счета, новые первыми; status фильтрует по статусу оплаты
func (r *Repository) List(ctx context.Context, status *domain.InvoiceStatus) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		OrderBy("invoice_date DESC", "id DESC")
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return invoices, nil
}

// GetByID возвращает счёт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	inv, err := scanInvoice(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan invoice: %v", ErrScanRow, err)
	}

	return inv, nil
}

// UpdateStatus меняет статус оплаты счёта
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invoices").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// Summary суммы по всем счетам и по статусам оплаты
func (r *Repository) Summary(ctx context.Context) (*domain.InvoiceSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(SUM(amount), 0)",
		"COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)",
		"COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)",
		"COUNT(*)",
	).
		From("invoices").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Summary - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.InvoiceSummary
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.Total, &s.Paid, &s.Pending, &s.Count); err != nil {
		return nil, fmt.Errorf("%w: Summary - scan row: %v", ErrScanRow, err)
	}

	return &s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	var createdAt sql.NullTime
	if err := row.Scan(
		&inv.ID,
		&inv.Number,
		&inv.BookingID,
		&inv.ClientName,
		&inv.ServiceID,
		&inv.Date,
		&inv.Amount,
		&inv.Status,
		&createdAt,
	); err != nil {
		return nil, err
	}
	inv.CreatedAt = createdAt.Time
	return &inv, nil
}
