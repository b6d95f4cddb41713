package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Config holds process configuration read from the environment
type Config struct {
	Host string
	Port int

	// StorageType selects the record store backend ("memory" or "redis")
	StorageType string
	RedisURL    string

	// OpenAI summarizer settings; insight generation is disabled when the
	// API key is empty
	OpenAIAPIKey string
	OpenAIModel  string

	// InsightTimeout bounds a single summarizer call
	InsightTimeout time.Duration
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Host:           "",
		Port:           8080,
		StorageType:    "memory",
		RedisURL:       "redis://localhost:6379",
		OpenAIModel:    "gpt-4o-mini",
		InsightTimeout: 10 * time.Second,
	}
}

// Load builds the configuration from the environment over the defaults
func Load() Config {
	cfg := Default()
	if raw := os.Getenv("HOST"); raw != "" {
		cfg.Host = raw
	}
	if raw := os.Getenv("PORT"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.Port = value
		}
	}
	if raw := os.Getenv("STORAGE_TYPE"); raw != "" {
		cfg.StorageType = raw
	}
	if raw := os.Getenv("REDIS_URL"); raw != "" {
		cfg.RedisURL = raw
	}
	if raw := os.Getenv("OPENAI_API_KEY"); raw != "" {
		cfg.OpenAIAPIKey = raw
	}
	if raw := os.Getenv("OPENAI_MODEL"); raw != "" {
		cfg.OpenAIModel = raw
	}
	if raw := os.Getenv("INSIGHT_TIMEOUT_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.InsightTimeout = time.Duration(value) * time.Second
		}
	}
	return cfg
}
