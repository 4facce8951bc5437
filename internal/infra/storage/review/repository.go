package review

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

const uniqueViolation = "23505"

var reviewColumns = []string{
	"id", "booking_id", "client_id", "client_name", "stylist_id", "service_id", "rating", "comment", "created_at",
}

// Repository отзывы клиентов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв. Повторный отзыв на бронирование даёт ErrAlreadyReviewed
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("booking_id", "client_id", "client_name", "stylist_id", "service_id", "rating", "comment").
		Values(review.BookingID, review.ClientID, review.ClientName, review.StylistID, review.ServiceID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// ListByClient отзывы клиента, новые первыми
func (r *Repository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Review, error) {
	return r.list(ctx, "ListByClient", squirrel.Eq{"client_id": clientID})
}

// ListByStylist отзывы о стилисте, новые первыми
func (r *Repository) ListByStylist(ctx context.Context, stylistID int64) ([]*domain.Review, error) {
	return r.list(ctx, "ListByStylist", squirrel.Eq{"stylist_id": stylistID})
}

// ListAll все отзывы, новые первыми
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Review, error) {
	return r.list(ctx, "ListAll", nil)
}

func (r *Repository) list(ctx context.Context, method string, where squirrel.Sqlizer) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		OrderBy("created_at DESC", "id DESC")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rv.ID, &rv.BookingID, &rv.ClientID, &rv.ClientName, &rv.StylistID,
			&rv.ServiceID, &rv.Rating, &rv.Comment, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		rv.CreatedAt = createdAt.Time
		reviews = append(reviews, &rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return reviews, nil
}
