package catalog

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

// Repository справочники салона: стилисты, категории и услуги
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func stylistSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"s.id",
		"s.name",
		"s.role",
		"s.bio",
		"s.specialties",
		"s.rating",
		"s.review_count",
		"s.instagram",
		"COALESCE(ARRAY_AGG(ss.service_id ORDER BY ss.service_id) FILTER (WHERE ss.service_id IS NOT NULL), '{}')",
	).
		From("stylists s").
		LeftJoin("stylist_services ss ON ss.stylist_id = s.id").
		GroupBy("s.id")
}

// GetStylistByID возвращает стилиста с его услугами (без расписания)
func (r *Repository) GetStylistByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := stylistSelect().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistByID - build select query: %v", ErrBuildQuery, err)
	}

	stylist, err := scanStylist(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistByID - scan stylist: %v", ErrScanRow, err)
	}

	return stylist, nil
}

// ListStylists возвращает всех стилистов по id
func (r *Repository) ListStylists(ctx context.Context) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := stylistSelect().OrderBy("s.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStylists - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStylists - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stylists := make([]*domain.Stylist, 0)
	for rows.Next() {
		stylist, err := scanStylist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStylists - scan row: %v", ErrScanRow, err)
		}
		stylists = append(stylists, stylist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStylists - rows error: %v", ErrScanRow, err)
	}

	return stylists, nil
}

// ListCategories возвращает категории услуг
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.ServiceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slug", "name", "description").
		From("service_categories").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.ServiceCategory, 0)
	for rows.Next() {
		var c domain.ServiceCategory
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// ListServices возвращает услуги; при непустом ids только указанные
func (r *Repository) ListServices(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "category_id", "name", "description", "duration_minutes", "price").
		From("services").
		OrderBy("id ASC")

	if len(ids) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"id": ids})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStylist(row rowScanner) (*domain.Stylist, error) {
	var s domain.Stylist
	var specialties pq.StringArray
	var serviceIDs pq.Int64Array

	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Role,
		&s.Bio,
		&specialties,
		&s.Rating,
		&s.ReviewCount,
		&s.Instagram,
		&serviceIDs,
	); err != nil {
		return nil, err
	}

	s.Specialties = []string(specialties)
	s.ServiceIDs = []int64(serviceIDs)

	return &s, nil
}
