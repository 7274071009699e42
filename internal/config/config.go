package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// History backends
const (
	BackendCSV        = "csv"
	BackendPostgres   = "postgres"
	BackendClickHouse = "clickhouse"
)

type Config struct {
	// Server
	Port           int           `validate:"min=1,max=65535"`
	Env            string        `validate:"oneof=development staging production test"`
	RequestTimeout time.Duration `validate:"gt=0"`
	StaticDir      string

	// Logging
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`

	// CORS
	AllowedOrigins []string

	// Model artifacts and history
	ArtifactsDir   string `validate:"required"`
	HistoryBackend string `validate:"oneof=csv postgres clickhouse"`
	HistoryCSV     string `validate:"required_if=HistoryBackend csv"`
	NameMatch      string `validate:"oneof=fold exact"`

	// Database URLs
	PostgresURL   string `validate:"required_if=HistoryBackend postgres"`
	ClickHouseURL string `validate:"required_if=HistoryBackend clickhouse"`
	RedisURL      string

	// Caching
	HistoryCacheTTL  time.Duration `validate:"gte=0"`
	ResponseCacheTTL time.Duration `validate:"gte=0"`
	StatsCacheTTL    time.Duration `validate:"gte=0"`

	// Reconciliation
	BlendThreshold float64 `validate:"gte=0,lte=1"`
	BlendEpsilon   float64 `validate:"gt=0"`

	// Rate limiting
	RateLimitPerSecond int `validate:"gte=0"`
	RateLimitBurst     int `validate:"gte=0"`
}

// Load loads configuration from environment variables, reading a .env file first when
// one exists. Variables already set in the environment take precedence over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:           getEnvInt("PORT", 5000),
		Env:            getEnv("ENV", "development"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		StaticDir:      getEnv("STATIC_DIR", ""),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		ArtifactsDir:   getEnv("ARTIFACTS_DIR", "artifacts"),
		HistoryBackend: strings.ToLower(getEnv("HISTORY_BACKEND", BackendCSV)),
		HistoryCSV:     getEnv("HISTORY_CSV", "data/processed_data.csv"),
		NameMatch:      strings.ToLower(getEnv("NAME_MATCH", "fold")),

		PostgresURL:   getEnv("POSTGRES_URL", ""),
		ClickHouseURL: getEnv("CLICKHOUSE_URL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),

		HistoryCacheTTL:  getEnvDuration("HISTORY_CACHE_TTL", 5*time.Minute),
		ResponseCacheTTL: getEnvDuration("RESPONSE_CACHE_TTL", 300*time.Second),
		StatsCacheTTL:    getEnvDuration("STATS_CACHE_TTL", 600*time.Second),

		BlendThreshold: getEnvFloat("BLEND_THRESHOLD", 0.1),
		BlendEpsilon:   getEnvFloat("BLEND_EPSILON", 0.01),

		RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
