package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Lifelog LifelogConfig
	Redis   RedisConfig
	Export  ExportConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// LifelogConfig holds upstream lifelog API configuration. APIKey is a
// server-wide fallback; clients normally send their own key per request.
type LifelogConfig struct {
	BaseURL    string        `envconfig:"LIFELOG_API_URL" default:"https://api.limitless.ai"`
	APIKey     string        `envconfig:"LIFELOG_API_KEY"`
	PageSize   int           `envconfig:"LIFELOG_PAGE_SIZE" default:"10"`
	Timeout    time.Duration `envconfig:"LIFELOG_TIMEOUT" default:"30s"`
	MaxRetries int           `envconfig:"LIFELOG_MAX_RETRIES" default:"3"`
	Timezone   string        `envconfig:"LIFELOG_TIMEZONE" default:"UTC"`
}

// RedisConfig holds the optional fetch-cache configuration. When disabled
// the server falls back to an in-memory store.
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"15m"`
}

// ExportConfig holds optimizer defaults, overridable per request.
type ExportConfig struct {
	MaxTokens      int    `envconfig:"EXPORT_MAX_TOKENS" default:"8000"`
	ChunkStrategy  string `envconfig:"EXPORT_CHUNK_STRATEGY" default:"semantic"`
	SummarizeLevel string `envconfig:"EXPORT_SUMMARIZE_LEVEL" default:"medium"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Export.MaxTokens <= 0 {
		return fmt.Errorf("EXPORT_MAX_TOKENS must be a positive integer")
	}
	switch c.Export.ChunkStrategy {
	case "fixed", "semantic", "temporal":
	default:
		return fmt.Errorf("EXPORT_CHUNK_STRATEGY must be one of fixed, semantic, temporal")
	}
	switch c.Export.SummarizeLevel {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("EXPORT_SUMMARIZE_LEVEL must be one of low, medium, high")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
