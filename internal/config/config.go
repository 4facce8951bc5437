package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, перекрывающих config.toml
// (например MILA_DATABASE_PASSWORD, MILA_AUTH_HASH_KEY)
const EnvPrefix = "MILA"

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port" split_words:"true"`
	ReadTimeout     int      `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int      `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int      `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int      `toml:"shutdown_timeout" split_words:"true"`
	AllowedOrigins  []string `toml:"allowed_origins" split_words:"true"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file" split_words:"true"`
	Level string `toml:"level" split_words:"true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
}

// AuthConfig ключи securecookie задаются в hex
type AuthConfig struct {
	HashKey           string `toml:"hash_key" split_words:"true"`
	BlockKey          string `toml:"block_key" split_words:"true"`
	CookieName        string `toml:"cookie_name" split_words:"true"`
	SessionTTLHours   int    `toml:"session_ttl_hours" split_words:"true"`
	LoginRatePerMin   int    `toml:"login_rate_per_min" split_words:"true"`
	LoginBurst        int    `toml:"login_burst" split_words:"true"`
	SecureCookie      bool   `toml:"secure_cookie" split_words:"true"`
}

// HashKeyBytes декодированный ключ подписи
func (a AuthConfig) HashKeyBytes() ([]byte, error) {
	return hex.DecodeString(a.HashKey)
}

// BlockKeyBytes декодированный ключ шифрования (может быть пустым)
func (a AuthConfig) BlockKeyBytes() ([]byte, error) {
	if a.BlockKey == "" {
		return nil, nil
	}
	return hex.DecodeString(a.BlockKey)
}

// BookingConfig часовой пояс салона, в котором считается "сегодня"
type BookingConfig struct {
	TimeZone string `toml:"timezone" split_words:"true"`
}

// Location загружает часовой пояс салона
func (b BookingConfig) Location() (*time.Location, error) {
	if b.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(b.TimeZone)
}

// Load читает config.toml и применяет переменные окружения MILA_*
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	sections := []struct {
		name   string
		target interface{}
	}{
		{"SERVER", &cfg.Server},
		{"DATABASE", &cfg.Database},
		{"LOGS", &cfg.Logs},
		{"METRICS", &cfg.Metrics},
		{"AUTH", &cfg.Auth},
		{"BOOKING", &cfg.Booking},
	}
	for _, s := range sections {
		if err := envconfig.Process(EnvPrefix+"_"+s.name, s.target); err != nil {
			return fmt.Errorf("config: env %s: %w", s.name, err)
		}
	}
	return nil
}

// Default значения по умолчанию для локального запуска
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			AllowedOrigins:  []string{"http://localhost:5173"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "mila",
			DBName:          "mila",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "mila-booking-service",
			Path:        "/metrics",
		},
		Auth: AuthConfig{
			CookieName:      "mila_session",
			SessionTTLHours: 24 * 14,
			LoginRatePerMin: 10,
			LoginBurst:      5,
		},
		Booking: BookingConfig{
			TimeZone: "America/New_York",
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must be non-negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	hashKey, err := c.Auth.HashKeyBytes()
	if err != nil {
		return fmt.Errorf("%w: auth.hash_key must be hex: %v", ErrInvalidConfig, err)
	}
	if len(hashKey) < 32 {
		return fmt.Errorf("%w: auth.hash_key must be at least 32 bytes", ErrInvalidConfig)
	}
	blockKey, err := c.Auth.BlockKeyBytes()
	if err != nil {
		return fmt.Errorf("%w: auth.block_key must be hex: %v", ErrInvalidConfig, err)
	}
	switch len(blockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("%w: auth.block_key must be 16, 24 or 32 bytes", ErrInvalidConfig)
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("%w: auth.cookie_name is required", ErrInvalidConfig)
	}
	if c.Auth.LoginRatePerMin <= 0 || c.Auth.LoginBurst <= 0 {
		return fmt.Errorf("%w: auth login rate and burst must be positive", ErrInvalidConfig)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}
