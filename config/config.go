package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store modes. Selected once at startup from the environment; the rest of the
// application only ever sees the repository interfaces.
const (
	StorePostgres = "postgres"
	StoreSupabase = "supabase"
	StoreMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// Store backends. DatabaseURL wins over Supabase; with neither set the
	// service runs on the in-memory mirror store (mock mode).
	DatabaseURL        string
	SupabaseURL        string
	SupabaseServiceKey string

	CORSAllowedOrigins []string
	DeepLinkScheme     string

	// Invite share mail. Empty AWS credentials fall back to the noop mailer.
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	EmailFrom          string
	EmailFromName      string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		DeepLinkScheme:     os.Getenv("DEEP_LINK_SCHEME"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		EmailFrom:          os.Getenv("EMAIL_FROM"),
		EmailFromName:      os.Getenv("EMAIL_FROM_NAME"),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DeepLinkScheme == "" {
		cfg.DeepLinkScheme = "meetups"
	}

	return cfg, nil
}

// StoreMode returns the backend the repositories should be built against.
func (c *Config) StoreMode() string {
	if c.DatabaseURL != "" {
		return StorePostgres
	}
	if c.SupabaseURL != "" && c.SupabaseServiceKey != "" {
		return StoreSupabase
	}
	return StoreMemory
}

// MockMode reports whether the service is running without a real store.
func (c *Config) MockMode() bool {
	return c.StoreMode() == StoreMemory
}
