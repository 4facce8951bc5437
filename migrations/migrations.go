// Package migrations содержит SQL-схему сервиса и начальные данные салона.
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/Mila-BookingService/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

var (
	ErrReadMigrations = errors.New("migrations: failed to read migration files")
	ErrApplyMigration = errors.New("migrations: failed to apply migration")
)

type Logger interface {
	Info(format string, v ...interface{})
}

// Files возвращает имена миграций в порядке применения
func Files() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Up применяет ещё не применённые миграции, отмечая их в schema_migrations
func Up(ctx context.Context, db dbmetrics.DBExecutor, log Logger) (int, error) {
	names, err := Files()
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW())`); err != nil {
		return 0, fmt.Errorf("%w: create schema_migrations: %v", ErrApplyMigration, err)
	}

	applied := 0
	for _, name := range names {
		var exists bool
		if err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&exists); err != nil {
			return applied, fmt.Errorf("%w: check %s: %v", ErrApplyMigration, name, err)
		}
		if exists {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrReadMigrations, name, err)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrApplyMigration, name, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			return applied, fmt.Errorf("%w: record %s: %v", ErrApplyMigration, name, err)
		}

		log.Info("Applied migration %s", name)
		applied++
	}

	return applied, nil
}
