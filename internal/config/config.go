// Package config loads process configuration from a layered source: a
// local .env file when present, then the process environment. The two
// provider keys are required; starting without them is a fatal condition
// surfaced before any external call is attempted.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingSerpAPIKey = errors.New("SERPAPI_KEY is missing: set it in .env or the environment")
	ErrMissingGoogleKey  = errors.New("GOOGLE_API_KEY is missing: set it in .env or the environment")
)

type Config struct {
	Port string

	SerpAPIKey   string
	GoogleAPIKey string

	Currency       string
	CurrencySymbol string
	Language       string

	ResearchModel string
	FinderModel   string
	PlannerModel  string

	CacheEnabled bool
	RedisEnabled bool
	RedisHost    string
	RedisPort    string
	RedisTTL     time.Duration

	RequestTimeout time.Duration
	LogLevel       string
}

// Load reads the layered configuration. A missing .env file is fine;
// missing required keys are not.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		SerpAPIKey:     os.Getenv("SERPAPI_KEY"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		Currency:       getEnv("CURRENCY", "INR"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
		Language:       getEnv("LANGUAGE", "en"),
		ResearchModel:  getEnv("RESEARCH_MODEL", "gemini-1.5-flash"),
		FinderModel:    getEnv("FINDER_MODEL", "gemini-1.5-flash"),
		PlannerModel:   getEnv("PLANNER_MODEL", "gemini-1.5-pro"),
		CacheEnabled:   getEnvBool("CACHE_ENABLED", true),
		RedisEnabled:   getEnvBool("REDIS_ENABLED", false),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisTTL:       getEnvDuration("REDIS_TTL", 5*time.Minute),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if cfg.SerpAPIKey == "" {
		return nil, ErrMissingSerpAPIKey
	}
	if cfg.GoogleAPIKey == "" {
		return nil, ErrMissingGoogleKey
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
