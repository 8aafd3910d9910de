package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the application configuration loaded from the environment
type Config struct {
	Env         string `validate:"required"`
	Version     string
	ServerPort  string `validate:"required,startswith=:"`
	APIBasePath string
	LogLevel    string `validate:"omitempty,oneof=debug info warn error"`
	LogPath     string

	DBDriver   string `validate:"required,oneof=sqlite mysql postgres"`
	DBPath     string `validate:"required_if=DBDriver sqlite"`
	DBHost     string `validate:"required_unless=DBDriver sqlite"`
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string `validate:"required_unless=DBDriver sqlite"`
	DBSSLMode  string

	SeedDemoData bool

	Search SearchConfig
}

// SearchConfig tunes the search aggregator
type SearchConfig struct {
	// DefaultLimit is the per-source limit used when the request has none
	DefaultLimit int `validate:"min=1"`
	// MaxLimit caps the per-source limit; 0 leaves it unbounded
	MaxLimit int `validate:"min=0"`
	// Parallelism is how many sources are queried at once; 1 is sequential
	Parallelism int `validate:"min=1"`
	// SourceTimeout bounds every single source lookup; 0 disables it
	SourceTimeout time.Duration `validate:"min=0"`
}

// NewConfig reads the configuration from environment variables
func NewConfig() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		ServerPort:  normalizePort(getEnv("SERVER_PORT", ":8100")),
		APIBasePath: strings.TrimRight(getEnv("API_BASE_PATH", "/api"), "/"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "debug")),
		LogPath:     getEnv("LOG_PATH", "logs"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:     getEnv("DB_PATH", "storage/portal.db"),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", ""),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", ""),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SeedDemoData: getEnvBool("SEED_DEMO_DATA", false),

		Search: SearchConfig{
			DefaultLimit:  getEnvInt("SEARCH_DEFAULT_LIMIT", 50),
			MaxLimit:      getEnvInt("SEARCH_MAX_LIMIT", 0),
			Parallelism:   getEnvInt("SEARCH_PARALLELISM", 4),
			SourceTimeout: getEnvDuration("SEARCH_SOURCE_TIMEOUT", 0),
		},
	}
}

// Validate checks the configuration for missing or inconsistent values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Env)
	return env == "production" || env == "prod"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
