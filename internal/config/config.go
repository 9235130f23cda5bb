package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы постоянного хранилища
const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Alerts backend
	AlertsAPIBaseURL    string        `env:"ALERTS_API_BASE_URL"`
	AlertsAPIKey        string        `env:"ALERTS_API_KEY"`
	EnableAlertsBackend bool          `env:"ENABLE_ALERTS_BACKEND" envDefault:"true"`
	AlertsAPITimeout    time.Duration `env:"ALERTS_API_TIMEOUT" envDefault:"10s"`

	// Store Config
	StoreDriver    string `env:"STORE_DRIVER" envDefault:"memory"`
	StoreKeyPrefix string `env:"STORE_KEY_PREFIX"`
	DatabaseURL    string `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Sync Config
	SyncInterval   time.Duration `env:"SYNC_INTERVAL" envDefault:"0"`
	DefaultPincode string        `env:"DEFAULT_PINCODE"`
	DefaultArea    string        `env:"DEFAULT_AREA"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// BackendEnabled сообщает, нужно ли вообще обращаться к бэкенду оповещений
func (c *Config) BackendEnabled() bool {
	return c.EnableAlertsBackend && strings.TrimSpace(c.AlertsAPIBaseURL) != ""
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		AlertsAPIBaseURL:    strings.TrimRight(os.Getenv("ALERTS_API_BASE_URL"), "/"),
		AlertsAPIKey:        os.Getenv("ALERTS_API_KEY"),
		EnableAlertsBackend: getEnvAsBool("ENABLE_ALERTS_BACKEND", true),
		AlertsAPITimeout:    getEnvAsDuration("ALERTS_API_TIMEOUT", 10*time.Second),
		StoreDriver:         strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMemory)),
		StoreKeyPrefix:      os.Getenv("STORE_KEY_PREFIX"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		SyncInterval:        getEnvAsDuration("SYNC_INTERVAL", 0),
		DefaultPincode:      os.Getenv("DEFAULT_PINCODE"),
		DefaultArea:         os.Getenv("DEFAULT_AREA"),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory, StoreDriverRedis:
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for the postgres store")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
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

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
