package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	EventSinkRedis = "redis"
	EventSinkNATS  = "nats"
	EventSinkNone  = "none"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL"`
	PGMaxConns    int    `env:"PG_MAX_CONNS" envDefault:"10"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config. Пустой адрес отключает кеш и очередь вебхуков
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Event sink: redis | nats | none
	EventSink   string `env:"EVENT_SINK" envDefault:"redis"`
	NATSURL     string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	NATSSubject string `env:"NATS_SUBJECT" envDefault:"dispatch.occurrences"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Dispatch Config
	SpeedKmPerMinute float64       `env:"SPEED_KM_PER_MINUTE" envDefault:"1.0"`
	DetailsCacheTTL  time.Duration `env:"DETAILS_CACHE_TTL" envDefault:"5m"`

	// Simulation Config: автоматическое подтверждение прибытия
	SimulationEnabled      bool          `env:"SIMULATION_ENABLED" envDefault:"false"`
	SimulationInterval     time.Duration `env:"SIMULATION_INTERVAL" envDefault:"2s"`
	SimulationSecondsPerKm time.Duration `env:"SIMULATION_SECONDS_PER_KM" envDefault:"1s"`

	// YAML-файл с районами, машинами и экипажами
	SeedFile string `env:"SEED_FILE"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		PGMaxConns:             getEnvAsInt("PG_MAX_CONNS", 10),
		StorageDriver:          getEnv("STORAGE_DRIVER", StorageDriverPostgres),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		EventSink:              getEnv("EVENT_SINK", EventSinkRedis),
		NATSURL:                getEnv("NATS_URL", "nats://localhost:4222"),
		NATSSubject:            getEnv("NATS_SUBJECT", "dispatch.occurrences"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SpeedKmPerMinute:       getEnvAsFloat("SPEED_KM_PER_MINUTE", 1.0),
		DetailsCacheTTL:        getEnvAsDuration("DETAILS_CACHE_TTL", 5*time.Minute),
		SimulationEnabled:      getEnvAsBool("SIMULATION_ENABLED", false),
		SimulationInterval:     getEnvAsDuration("SIMULATION_INTERVAL", 2*time.Second),
		SimulationSecondsPerKm: getEnvAsDuration("SIMULATION_SECONDS_PER_KM", time.Second),
		SeedFile:               os.Getenv("SEED_FILE"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.EventSink {
	case EventSinkRedis, EventSinkNATS, EventSinkNone:
	default:
		return fmt.Errorf("unknown EVENT_SINK %q", c.EventSink)
	}

	if c.SpeedKmPerMinute <= 0 {
		return fmt.Errorf("SPEED_KM_PER_MINUTE must be positive, got %v", c.SpeedKmPerMinute)
	}
	if c.WebhookMaxRetries < 1 {
		c.WebhookMaxRetries = 1
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
