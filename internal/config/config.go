package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	FacilityService FacilityServiceConfig `toml:"facility_service"`
	Cache           CacheConfig           `toml:"cache"`
	Events          EventsConfig          `toml:"events"`
	Janitor         JanitorConfig         `toml:"janitor"`
	Booking         BookingConfig         `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"` // пусто - только stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled      bool   `toml:"enabled"`
	Path         string `toml:"path"`
	ServiceName  string `toml:"service_name"`
	PoolInterval int    `toml:"pool_interval"` // секунды
}

type FacilityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

type EventsConfig struct {
	Enabled      bool     `toml:"enabled"`
	Brokers      []string `toml:"brokers"`
	Topic        string   `toml:"topic"`
	WriteTimeout int      `toml:"write_timeout"` // секунды
}

type JanitorConfig struct {
	Enabled       bool   `toml:"enabled"`
	Schedule      string `toml:"schedule"` // cron, 5 полей
	RetentionDays int    `toml:"retention_days"`
	Timeout       int    `toml:"timeout"` // секунды
}

type BookingConfig struct {
	Timezone string `toml:"timezone"` // IANA, определяет "сегодня"
}

// envOverrides переменные окружения, перекрывающие значения из файла
type envOverrides struct {
	DBHost             string `envconfig:"DB_HOST"`
	DBPassword         string `envconfig:"DB_PASSWORD"`
	FacilityServiceURL string `envconfig:"FACILITY_SERVICE_URL"`
	RedisAddr          string `envconfig:"REDIS_ADDR"`
	KafkaBrokers       string `envconfig:"KAFKA_BROKERS"` // через запятую
}

// Load читает TOML файл, подгружает .env (если есть) и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:         "/metrics",
			ServiceName:  "facility-booking",
			PoolInterval: 15,
		},
		FacilityService: FacilityServiceConfig{Timeout: 5},
		Cache:           CacheConfig{TTL: 300},
		Events: EventsConfig{
			Topic:        "booking-events",
			WriteTimeout: 5,
		},
		Janitor: JanitorConfig{
			Schedule:      "0 3 * * *",
			RetentionDays: 30,
			Timeout:       60,
		},
		Booking: BookingConfig{Timezone: "UTC"},
	}
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.DBHost != "" {
		c.Database.Host = env.DBHost
	}
	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.FacilityServiceURL != "" {
		c.FacilityService.URL = env.FacilityServiceURL
	}
	if env.RedisAddr != "" {
		c.Cache.Addr = env.RedisAddr
	}
	if env.KafkaBrokers != "" {
		c.Events.Brokers = splitList(env.KafkaBrokers)
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.FacilityService.URL == "" {
		return fmt.Errorf("facility_service.url is required")
	}
	if c.Metrics.Enabled && c.Metrics.PoolInterval <= 0 {
		return fmt.Errorf("metrics.pool_interval must be positive")
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("cache.addr is required when cache is enabled")
	}
	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("events.brokers is required when events are enabled")
	}
	if c.Janitor.Enabled && c.Janitor.RetentionDays < 0 {
		return fmt.Errorf("janitor.retention_days must not be negative")
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("booking.timezone: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
