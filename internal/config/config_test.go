package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "billboard"
dbname = "billboard"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 12000.0, cfg.Pricing.FallbackSlotPrice)
	assert.Equal(t, 100000.0, cfg.Pricing.SuspiciousPriceThreshold)
	assert.Equal(t, PriceModeTrust, cfg.Pricing.ClientPriceMode)
	assert.False(t, cfg.Pricing.EnforceSlotCapacity)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "UTC", cfg.Server.Timezone)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
timezone = "Asia/Kolkata"

[pricing]
client_price_mode = "enforce"
enforce_slot_capacity = true
suspicious_price_threshold = 50000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, PriceModeEnforce, cfg.Pricing.ClientPriceMode)
	assert.True(t, cfg.Pricing.EnforceSlotCapacity)
	assert.Equal(t, 50000.0, cfg.Pricing.SuspiciousPriceThreshold)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("LOG_LEVEL", "debug")

	path := writeConfig(t, `
[database]
host = "localhost"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoad_InvalidPriceMode(t *testing.T) {
	path := writeConfig(t, `
[pricing]
client_price_mode = "whatever"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", d.DSN())
}
