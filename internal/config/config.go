package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Режимы обработки цены, присланной клиентом при создании бронирования
const (
	PriceModeTrust     = "trust"
	PriceModeEnforce   = "enforce"
	PriceModeRecompute = "recompute"
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Pricing   PricingConfig   `toml:"pricing"`
	Redis     RedisConfig     `toml:"redis"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Timezone        string `toml:"timezone"` // IANA-имя, в нём считаются границы суток
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	RepairFile string `toml:"repair_file"` // лог пакетного исправления цен
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type PricingConfig struct {
	FallbackSlotPrice        float64 `toml:"fallback_slot_price"`
	SuspiciousPriceThreshold float64 `toml:"suspicious_price_threshold"`
	ClientPriceMode          string  `toml:"client_price_mode"`
	EnforceSlotCapacity      bool    `toml:"enforce_slot_capacity"`
	RepairBatchSize          int     `toml:"repair_batch_size"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	LockKey  string `toml:"lock_key"`
	LockTTL  int    `toml:"lock_ttl"` // секунды
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает TOML-файл, затем накладывает переменные окружения (в т.ч. из .env)
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		cfg.Server.Timezone = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Server.Timezone == "" {
		cfg.Server.Timezone = "UTC"
	}

	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "logs/app.log"
	}
	if cfg.Logs.RepairFile == "" {
		cfg.Logs.RepairFile = "logs/repair.log"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "billboard_service"
	}

	if cfg.Pricing.FallbackSlotPrice == 0 {
		cfg.Pricing.FallbackSlotPrice = 12000
	}
	if cfg.Pricing.SuspiciousPriceThreshold == 0 {
		cfg.Pricing.SuspiciousPriceThreshold = 100000
	}
	if cfg.Pricing.ClientPriceMode == "" {
		cfg.Pricing.ClientPriceMode = PriceModeTrust
	}
	if cfg.Pricing.RepairBatchSize == 0 {
		cfg.Pricing.RepairBatchSize = 100
	}

	if cfg.Redis.LockKey == "" {
		cfg.Redis.LockKey = "billboard:repair-prices:lock"
	}
	if cfg.Redis.LockTTL == 0 {
		cfg.Redis.LockTTL = 600
	}

	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 10
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 20
	}
}

// Validate проверяет значения после применения значений по умолчанию
func (c *Config) Validate() error {
	switch c.Pricing.ClientPriceMode {
	case PriceModeTrust, PriceModeEnforce, PriceModeRecompute:
	default:
		return fmt.Errorf("%w: unknown pricing.client_price_mode %q", ErrInvalidConfig, c.Pricing.ClientPriceMode)
	}

	if c.Pricing.FallbackSlotPrice < 0 {
		return fmt.Errorf("%w: pricing.fallback_slot_price must be >= 0", ErrInvalidConfig)
	}
	if c.Pricing.SuspiciousPriceThreshold <= 0 {
		return fmt.Errorf("%w: pricing.suspicious_price_threshold must be > 0", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		return fmt.Errorf("%w: server.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Location часовой пояс сервиса. Validate гарантирует, что он загружается.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
