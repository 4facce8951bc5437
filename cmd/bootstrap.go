package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/Mila-BookingService/internal/config"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
)

// bootstrap загружает конфигурацию, логгер и соединение с PostgreSQL,
// общие для всех команд
func bootstrap() (*config.Config, *logger.Logger, *sql.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("Configuration loaded from %s", configPath)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Close()
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		log.Close()
		return nil, nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	return cfg, log, db, nil
}
