package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not set")

type Config struct {
	GeminiAPIKey string
	GeminiModel  string

	Port     string
	Env      string
	LogLevel string

	MaxConcurrentGenerations int
	GenerationTimeout        time.Duration // 0 = wait as long as the provider takes
}

func (c *Config) Development() bool {
	return c.Env == EnvDevelopment
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env (if present) and the environment. GEMINI_API_KEY is the
// only required value.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		Port:         getEnv("PORT", "8080"),
		Env:          strings.ToLower(getEnv("APP_ENV", EnvProduction)),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch cfg.Env {
	case EnvProduction, EnvDevelopment:
	default:
		return nil, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvProduction, EnvDevelopment, cfg.Env)
	}

	if v := os.Getenv("MAX_CONCURRENT_GENERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("MAX_CONCURRENT_GENERATIONS must be a non-negative integer, got %q", v)
		}
		cfg.MaxConcurrentGenerations = n
	}

	if v := os.Getenv("GENERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("GENERATION_TIMEOUT must be a non-negative duration, got %q", v)
		}
		cfg.GenerationTimeout = d
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
