package cart

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Mila-BookingService/pkg/psqlbuilder"
)

// Repository корзина пользователя
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetLines возвращает позиции корзины вместе с данными товаров
func (r *Repository) GetLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id", "p.name", "p.brand", "p.description", "p.price", "p.category",
		"p.stock_quantity", "p.rating", "p.featured", "p.is_custom", "ci.quantity",
	).
		From("cart_items ci").
		Join("products p ON p.id = ci.product_id").
		Where(squirrel.Eq{"ci.user_id": userID}).
		OrderBy("p.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.CartLine, 0)
	for rows.Next() {
		var p domain.Product
		var quantity int
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Brand, &p.Description, &p.Price, &p.Category,
			&p.StockQuantity, &p.Rating, &p.Featured, &p.IsCustom, &quantity,
		); err != nil {
			return nil, fmt.Errorf("%w: GetLines - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, domain.CartLine{Product: &p, Quantity: quantity})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLines - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}

// AddItem добавляет quantity штук товара; существующая позиция увеличивается
func (r *Repository) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cart_items").
		Columns("user_id", "product_id", "quantity").
		Values(userID, productID, quantity).
		Suffix("ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddItem - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddItem - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// SetQuantity задаёт количество существующей позиции
func (r *Repository) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cart_items").
		Set("quantity", quantity).
		Where(squirrel.Eq{"user_id": userID, "product_id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetQuantity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetQuantity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetQuantity - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// RemoveItem удаляет позицию из корзины
func (r *Repository) RemoveItem(ctx context.Context, userID, productID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cart_items").
		Where(squirrel.Eq{"user_id": userID, "product_id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveItem - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveItem - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveItem - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Clear очищает корзину пользователя
func (r *Repository) Clear(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cart_items").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
