package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Providers ProvidersConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Jobs      JobsConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ProvidersConfig holds WhatsApp gateway defaults. Values stored in global
// settings take precedence; these only fill in blanks.
type ProvidersConfig struct {
	DefaultWahaHost        string
	DefaultWahaAPIKey      string
	DefaultEvolutionHost   string
	DefaultEvolutionAPIKey string
	Timeout                time.Duration
	RequestsPerSecond      float64
	SettingsCacheTTL       time.Duration
	SyncConcurrency        int
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	Topic         string
	ConsumerGroup string
}

// JobsConfig holds background job settings
type JobsConfig struct {
	Concurrency         int
	SessionSyncInterval string
}

// RateLimitConfig holds per-tenant API rate limit settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Provider defaults
	cfg.Providers.DefaultWahaHost = os.Getenv("DEFAULT_WAHA_HOST")
	cfg.Providers.DefaultWahaAPIKey = os.Getenv("DEFAULT_WAHA_API_KEY")
	cfg.Providers.DefaultEvolutionHost = os.Getenv("DEFAULT_EVOLUTION_HOST")
	cfg.Providers.DefaultEvolutionAPIKey = os.Getenv("DEFAULT_EVOLUTION_API_KEY")

	if cfg.Providers.Timeout, err = time.ParseDuration(getEnvWithDefault("PROVIDER_TIMEOUT", "15s")); err != nil {
		return nil, fmt.Errorf("failed to parse PROVIDER_TIMEOUT: %w", err)
	}
	if cfg.Providers.RequestsPerSecond, err = strconv.ParseFloat(getEnvWithDefault("PROVIDER_RPS", "10"), 64); err != nil {
		return nil, fmt.Errorf("failed to parse PROVIDER_RPS: %w", err)
	}
	if cfg.Providers.SettingsCacheTTL, err = time.ParseDuration(getEnvWithDefault("SETTINGS_CACHE_TTL", "30s")); err != nil {
		return nil, fmt.Errorf("failed to parse SETTINGS_CACHE_TTL: %w", err)
	}
	if cfg.Providers.SyncConcurrency, err = strconv.Atoi(getEnvWithDefault("SESSION_SYNC_CONCURRENCY", "8")); err != nil {
		return nil, fmt.Errorf("failed to parse SESSION_SYNC_CONCURRENCY: %w", err)
	}

	// Redis configuration
	cfg.Redis.Addr = getEnvWithDefault("REDIS_HOST", "localhost:6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Enabled, err = strconv.ParseBool(getEnvWithDefault("REDIS_ENABLED", "true")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_ENABLED: %w", err)
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Kafka configuration
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Enabled = true
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "campaign-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "campaign-audit")

	// Jobs configuration
	if cfg.Jobs.Concurrency, err = strconv.Atoi(getEnvWithDefault("WORKER_CONCURRENCY", "10")); err != nil {
		return nil, fmt.Errorf("failed to parse WORKER_CONCURRENCY: %w", err)
	}
	cfg.Jobs.SessionSyncInterval = getEnvWithDefault("SESSION_SYNC_INTERVAL", "@every 1m")

	if cfg.RateLimit.RequestsPerMinute, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_RPM", "600")); err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_RPM: %w", err)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.AllowedOrigins = strings.Split(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000"), ",")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
