// Package config loads process configuration from the environment. A .env
// file in the working directory is honored when present.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service needs at startup.
type Config struct {
	// ListenAddr is the HTTP listen address
	ListenAddr string
	// GeminiAPIKey enables the external classifier when non-empty
	GeminiAPIKey string
	// GeminiModel overrides the default classifier model
	GeminiModel string
	// GeminiTimeout bounds one classifier call
	GeminiTimeout time.Duration
	// CatalogPath points at an optional YAML catalog override
	CatalogPath string
	// DatabaseURL enables the Postgres blocked-domain source when non-empty
	DatabaseURL string
	// RedisAddr enables the request rate limiter when non-empty
	RedisAddr string
	// RateLimit is the max analyses per client per window
	RateLimit int
	// RateWindow is the limiter window
	RateWindow time.Duration
}

// Load reads configuration from the environment, loading .env first if one
// exists. Absent variables fall back to defaults; nothing here is fatal,
// since the engine works with no configuration at all.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:    getEnv("DETETIVE_LISTEN_ADDR", ":8080"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("DETETIVE_GEMINI_MODEL", ""),
		GeminiTimeout: getEnvDuration("DETETIVE_GEMINI_TIMEOUT", 20*time.Second),
		CatalogPath:   getEnv("DETETIVE_CATALOG_PATH", "./config/catalog.yaml"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("DETETIVE_REDIS_ADDR"),
		RateLimit:     clampInt(GetEnvInt("DETETIVE_RATE_LIMIT", 30), 1, 10000),
		RateWindow:    getEnvDuration("DETETIVE_RATE_WINDOW", time.Minute),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt reads an integer environment variable, returning def when the
// variable is unset or unparseable.
func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
