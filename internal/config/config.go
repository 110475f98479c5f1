package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr        = "127.0.0.1:8081"
	DefaultCORSOrigin  = "http://127.0.0.1:8080"
	DefaultMaxFileSize = 50 << 20 // 50MB
	DefaultTimeout     = 60 * time.Second
	CORSMaxAge         = 3600
)

type Config struct {
	Addr     string
	LogLevel string

	// CORS
	CORSEnabled bool
	CORSOrigin  string

	// Resource limits, zero disables
	MaxFileSize       int64
	ExtractionTimeout time.Duration

	// Journal, empty disables
	JournalDB string

	// S3, empty endpoint disables
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3UseSSL          bool
}

// Load reads the optional dotenv file named by ENV_FILE (default .env) and then
// builds the configuration from the environment. Variables already set in the
// environment win over the file.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:              getEnv("EXTRACTION_SERVICE_ADDR", DefaultAddr),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigin:        getEnv("EXTRACTION_CORS_ORIGIN", DefaultCORSOrigin),
		JournalDB:         getEnv("EXTRACTION_JOURNAL_DB", ""),
		S3Endpoint:        getEnv("EXTRACTION_S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("EXTRACTION_S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("EXTRACTION_S3_SECRET_ACCESS_KEY", ""),
	}

	var err error
	if cfg.CORSEnabled, err = getBool("EXTRACTION_CORS_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.S3UseSSL, err = getBool("EXTRACTION_S3_USE_SSL", false); err != nil {
		return nil, err
	}

	cfg.MaxFileSize = DefaultMaxFileSize
	if v := os.Getenv("EXTRACTION_MAX_FILE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("EXTRACTION_MAX_FILE_SIZE must be a non-negative byte count, got %q", v)
		}
		cfg.MaxFileSize = size
	}

	cfg.ExtractionTimeout = DefaultTimeout
	if v := os.Getenv("EXTRACTION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("EXTRACTION_TIMEOUT must be a non-negative duration, got %q", v)
		}
		cfg.ExtractionTimeout = d
	}

	if cfg.CORSEnabled && cfg.CORSOrigin == "" {
		return nil, fmt.Errorf("EXTRACTION_CORS_ORIGIN is required when CORS is enabled")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return b, nil
}
