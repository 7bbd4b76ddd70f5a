package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spooltrack/spooltrack/pkg/observability"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// DatabaseConfig holds relational storage configuration
type DatabaseConfig struct {
	// Driver is "postgres" (production) or "sqlite3" (dev mode)
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig holds session store configuration. An empty Addr selects the
// in-memory session store (dev mode only).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel       observability.LogLevel
	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SPOOLTRACK_HOST", "0.0.0.0"),
			Port:            getEnv("SPOOLTRACK_PORT", "8080"),
			ReadTimeout:     getEnvDuration("SPOOLTRACK_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("SPOOLTRACK_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("SPOOLTRACK_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("SPOOLTRACK_SHUTDOWN_TIMEOUT", 30*time.Second),
			CORSOrigins:     splitAndTrim(getEnv("SPOOLTRACK_CORS_ORIGINS", "*")),
		},
		Database: DatabaseConfig{
			Driver:       getEnv("SPOOLTRACK_DB_DRIVER", "sqlite3"),
			DSN:          getEnv("SPOOLTRACK_DB_DSN", "file:spooltrack.db?_fk=1"),
			MaxOpenConns: getEnvInt("SPOOLTRACK_DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns: getEnvInt("SPOOLTRACK_DB_MAX_IDLE_CONNS", 2),
		},
		Redis: RedisConfig{
			Addr:     getEnv("SPOOLTRACK_REDIS_ADDR", ""),
			Password: getEnv("SPOOLTRACK_REDIS_PASSWORD", ""),
			DB:       getEnvInt("SPOOLTRACK_REDIS_DB", 0),
		},
		Observability: ObservabilityConfig{
			LogLevel:       parseLogLevel(getEnv("SPOOLTRACK_LOG_LEVEL", "info")),
			MetricsEnabled: getEnvBool("SPOOLTRACK_METRICS_ENABLED", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch c.Database.Driver {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("invalid database driver: %s (must be postgres or sqlite3)", c.Database.Driver)
	}

	if c.Database.DSN == "" {
		return fmt.Errorf("database DSN is required")
	}

	if c.Database.Driver == "postgres" && c.Redis.Addr == "" {
		return fmt.Errorf("redis address is required for production (postgres) deployments")
	}

	return nil
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) observability.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return observability.DebugLevel
	case "info":
		return observability.InfoLevel
	case "warn", "warning":
		return observability.WarnLevel
	case "error":
		return observability.ErrorLevel
	default:
		return observability.InfoLevel
	}
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
