package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHashKey = strings.Repeat("ab", 32)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "salon"
password = "secret"
dbname = "salon"
sslmode = "disable"

[auth]
hash_key = "`+testHashKey+`"

[booking]
timezone = "UTC"
`)

	t.Setenv("MILA_DATABASE_PASSWORD", "from-env")
	t.Setenv("MILA_SERVER_HTTP_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "mila_session", cfg.Auth.CookieName)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MILA_AUTH_HASH_KEY", testHashKey)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "short hash key", mutate: func(c *Config) { c.Auth.HashKey = "abcd" }, wantErr: true},
		{name: "hash key not hex", mutate: func(c *Config) { c.Auth.HashKey = strings.Repeat("zz", 32) }, wantErr: true},
		{name: "bad block key size", mutate: func(c *Config) { c.Auth.BlockKey = strings.Repeat("ab", 10) }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Server.HTTPPort = 70000 }, wantErr: true},
		{name: "no db host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: true},
		{name: "unknown timezone", mutate: func(c *Config) { c.Booking.TimeZone = "Mars/Olympus" }, wantErr: true},
		{name: "zero login rate", mutate: func(c *Config) { c.Auth.LoginRatePerMin = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.HashKey = testHashKey
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
