package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Mila-BookingService/pkg/psqlbuilder"
)

var productColumns = []string{
	"id", "name", "brand", "description", "price", "category",
	"stock_quantity", "rating", "featured", "is_custom",
}

// Repository товары магазина салона
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает товары; category фильтрует по категории, если задана
func (r *Repository) List(ctx context.Context, category *string) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(productColumns...).
		From("products").
		OrderBy("featured DESC", "id ASC")
	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return products, nil
}

// GetByID возвращает товар по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProduct(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan product: %v", ErrScanRow, err)
	}

	return p, nil
}

// Create добавляет товар, созданный администратором
func (r *Repository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("products").
		Columns("name", "brand", "description", "price", "category", "stock_quantity", "rating", "featured", "is_custom").
		Values(p.Name, p.Brand, p.Description, p.Price, p.Category, p.StockQuantity, p.Rating, p.Featured, p.IsCustom).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// UpdateStock задаёт остаток товара
func (r *Repository) UpdateStock(ctx context.Context, id int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("stock_quantity", quantity).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStock - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStock - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Brand,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.StockQuantity,
		&p.Rating,
		&p.Featured,
		&p.IsCustom,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
