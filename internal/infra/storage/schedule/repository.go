package schedule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Mila-BookingService/pkg/psqlbuilder"
)

// Repository недельное расписание стилистов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStylistID возвращает расписание стилиста, упорядоченное по дню недели.
// Пустой результат означает, что расписание не задано
func (r *Repository) GetByStylistID(ctx context.Context, stylistID int64) ([]domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "opens", "closes", "is_open").
		From("stylist_schedules").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make([]domain.WeeklyAvailability, 0, 7)
	for rows.Next() {
		var day domain.WeeklyAvailability
		if err := rows.Scan(&day.Weekday, &day.Opens, &day.Closes, &day.IsOpen); err != nil {
			return nil, fmt.Errorf("%w: GetByStylistID - scan row: %v", ErrScanRow, err)
		}
		schedule = append(schedule, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStylistID - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// Replace заменяет всё расписание стилиста. Вызывать внутри транзакции
func (r *Repository) Replace(ctx context.Context, stylistID int64, schedule []domain.WeeklyAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("stylist_schedules").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(schedule) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("stylist_schedules").
		Columns("stylist_id", "weekday", "opens", "closes", "is_open")
	for _, day := range schedule {
		insert = insert.Values(stylistID, day.Weekday, day.Opens, day.Closes, day.IsOpen)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
