package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort                string        `validate:"required,numeric"`
	DBHost                  string        `validate:"required"`
	DBPort                  string        `validate:"required,numeric"`
	DBUser                  string        `validate:"required"`
	DBPassword              string        `validate:"-"`
	DBName                  string        `validate:"required"`
	DBSslMode               string        `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	RedisAddr               string        `validate:"omitempty,hostname_port"`
	RedisPassword           string        `validate:"-"`
	CatalogCacheTTL         time.Duration `validate:"gte=0"`
	CatalogWarmupSchedule   string        `validate:"-"`
	KafkaHost               string        `validate:"-"`
	KafkaNotificationsTopic string        `validate:"required_with=KafkaHost"`
	LogLevel                string        `validate:"oneof=debug info warn error"`
}

// LoadConfig reads the configuration from the environment after loading the
// optional .env files. Variables already set in the environment win.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds and validates the configuration from getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:                get("HTTP_PORT", "8080"),
		DBHost:                  get("DB_HOST", ""),
		DBPort:                  get("DB_PORT", "5432"),
		DBUser:                  get("DB_USER", ""),
		DBPassword:              getenv("DB_PASSWORD"),
		DBName:                  get("DB_NAME", ""),
		DBSslMode:               get("DB_SSLMODE", "disable"),
		RedisAddr:               get("REDIS_ADDR", ""),
		RedisPassword:           getenv("REDIS_PASSWORD"),
		CatalogWarmupSchedule:   get("CATALOG_WARMUP_SCHEDULE", ""),
		KafkaHost:               get("KAFKA_HOST", ""),
		KafkaNotificationsTopic: get("KAFKA_NOTIFICATIONS_TOPIC", ""),
		LogLevel:                strings.ToLower(get("LOG_LEVEL", "info")),
	}

	if ttl := get("CATALOG_CACHE_TTL", ""); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("CATALOG_CACHE_TTL: %w", err)
		}
		config.CatalogCacheTTL = d
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
