package config

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider exposes the application configuration to the rest of the code.
// Consumers depend on this interface rather than the concrete Config struct
// so tests can substitute their own values.
type Provider interface {
	GetAppEnv() string
	GetAppPort() string
	GetAppBaseURL() string
	GetLogFormat() string
	GetAssetSource() string
	GetStaticDir() string
	GetStatusInterval() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv         string        `validate:"required,oneof=development production test"`
	AppPort        string        `validate:"required,numeric"`
	AppBaseURL     string        `validate:"required,url"`
	LogFormat      string        `validate:"required,oneof=text json"`
	AssetSource    string        `validate:"required,oneof=embed disk"`
	StaticDir      string        `validate:"required"`
	StatusInterval time.Duration `validate:"required,min=1s"`
}

// New loads configuration from environment variables.
// A .env file is honored when present so local development does not need
// exported variables; production deployments set the environment directly.
// Secrets and endpoints are never compiled in.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		AppPort:        getEnv("APP_PORT", "4173"),
		AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:4173"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		AssetSource:    getEnv("APP_ASSETS", ""),
		StaticDir:      getEnv("APP_STATIC_DIR", "web/static"),
		StatusInterval: getDurationEnv("STATUS_REFRESH_INTERVAL", 30*time.Second),
	}

	// Production defaults to the embedded asset bundle; development serves
	// straight from disk so edits show up without a rebuild.
	if cfg.AssetSource == "" {
		if cfg.AppEnv == "production" {
			cfg.AssetSource = "embed"
		} else {
			cfg.AssetSource = "disk"
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Ignoring invalid duration for %s: %q", key, v)
		return fallback
	}
	return d
}

func (c *Config) GetAppEnv() string                { return c.AppEnv }
func (c *Config) GetAppPort() string               { return c.AppPort }
func (c *Config) GetAppBaseURL() string            { return c.AppBaseURL }
func (c *Config) GetLogFormat() string             { return c.LogFormat }
func (c *Config) GetAssetSource() string           { return c.AssetSource }
func (c *Config) GetStaticDir() string             { return c.StaticDir }
func (c *Config) GetStatusInterval() time.Duration { return c.StatusInterval }
