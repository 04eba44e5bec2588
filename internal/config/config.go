package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	// Server
	Port           int           `validate:"gt=0,lte=65535"`
	Env            string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`

	// CORS
	AllowedOrigins []string

	// Database URLs
	DatabaseURL   string `validate:"required"`
	ClickHouseURL string
	RedisURL      string `validate:"required"`

	// Auth for write endpoints; empty leaves them open
	AdminToken string

	// Root of the postgres/ and clickhouse/ schema files used by /system/install
	MigrationsDir string

	// Worker pool
	WorkerCount   int           `validate:"gt=0"`
	QueueSize     int           `validate:"gt=0"`
	BatchSize     int           `validate:"gt=0"`
	FlushInterval time.Duration `validate:"gt=0"`

	// Scheduler
	StatsRecomputeInterval  time.Duration `validate:"gt=0"`
	AnalyzeUpcomingInterval time.Duration `validate:"gt=0"`
	AnalyzeUpcomingLimit    int           `validate:"gte=0"`

	// Analytics
	FormDefaultWindow       int     `validate:"gt=0"`
	PredictionHomeAdvantage float64 `validate:"gt=0"`
	PredictionMaxGoals      int     `validate:"gt=0,lte=30"`
	TrendConfidenceLevel    float64 `validate:"gt=0,lt=1"`
	TrendCacheTTL           time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing or out of range.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvInt("PORT", 8000),
		Env:            getEnv("ENV", "development"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),

		ClickHouseURL: getEnv("CLICKHOUSE_URL", ""),
		AdminToken:    getEnv("ADMIN_TOKEN", ""),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),

		WorkerCount:   getEnvInt("WORKER_COUNT", 2),
		QueueSize:     getEnvInt("QUEUE_SIZE", 10000),
		BatchSize:     getEnvInt("BATCH_SIZE", 500),
		FlushInterval: getEnvDuration("FLUSH_INTERVAL", 1*time.Second),

		StatsRecomputeInterval:  getEnvDuration("STATS_RECOMPUTE_INTERVAL", 2*time.Hour),
		AnalyzeUpcomingInterval: getEnvDuration("ANALYZE_UPCOMING_INTERVAL", 30*time.Minute),
		AnalyzeUpcomingLimit:    getEnvInt("ANALYZE_UPCOMING_LIMIT", 10),

		FormDefaultWindow:       getEnvInt("FORM_DEFAULT_WINDOW", 5),
		PredictionHomeAdvantage: getEnvFloat("PREDICTION_HOME_ADVANTAGE", 1.0),
		PredictionMaxGoals:      getEnvInt("PREDICTION_MAX_GOALS", 10),
		TrendConfidenceLevel:    getEnvFloat("TREND_CONFIDENCE_LEVEL", 0.95),
		TrendCacheTTL:           getEnvDuration("TREND_CACHE_TTL", 5*time.Minute),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.DatabaseURL, err = getEnvRequired("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DatabaseDriver reports which backend DatabaseURL selects: "postgres" or "sqlite".
func (c *Config) DatabaseDriver() (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(c.DatabaseURL, "postgres://"), strings.HasPrefix(c.DatabaseURL, "postgresql://"):
		return "postgres", c.DatabaseURL, nil
	case strings.HasPrefix(c.DatabaseURL, "sqlite://"):
		return "sqlite", strings.TrimPrefix(c.DatabaseURL, "sqlite://"), nil
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", c.DatabaseURL)
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
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
