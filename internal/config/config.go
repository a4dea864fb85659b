package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	// RunMigrations applies the schema on startup when a database is set.
	RunMigrations bool
	// Redis PDF cache
	RedisAddr     string
	RedisPassword string
	PDFCacheTTL   time.Duration
	// RabbitMQ export queue
	AMQPURL       string
	ExportQueue   string
	ExportWorkers int
	// Export storage: S3 when a bucket is set, otherwise StorageDir
	StorageDir        string
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	// PDF rendering
	ChromePath     string
	RenderAttempts int
	LogLevel       string
}

func Load() (*Config, error) {
	// a missing .env is fine outside local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		PDFCacheTTL:       getEnvDuration("PDF_CACHE_TTL", 24*time.Hour),
		AMQPURL:           getEnv("AMQP_URL", ""),
		ExportQueue:       getEnv("EXPORT_QUEUE", "resume_exports"),
		ExportWorkers:     getEnvInt("EXPORT_WORKERS", 3),
		StorageDir:        getEnv("STORAGE_DIR", "resume-data"),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", ""),
		S3Endpoint:        strings.TrimRight(getEnv("S3_ENDPOINT", ""), "/"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		ChromePath:        getEnv("CHROME_PATH", ""),
		RenderAttempts:    getEnvInt("RENDER_ATTEMPTS", 3),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.ExportWorkers < 1 {
		errs = append(errs, errors.New("EXPORT_WORKERS must be positive"))
	}
	if c.RenderAttempts < 1 {
		errs = append(errs, errors.New("RENDER_ATTEMPTS must be positive"))
	}
	if c.PDFCacheTTL <= 0 {
		errs = append(errs, errors.New("PDF_CACHE_TTL must be positive"))
	}
	if c.S3Bucket != "" && c.S3Region == "" {
		errs = append(errs, errors.New("S3_REGION is required when S3_BUCKET is set"))
	}
	return errors.Join(errs...)
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations such as "24h" or "90m".
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
