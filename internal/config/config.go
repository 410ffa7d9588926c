package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port" validate:"required,numeric"`
	Env             string        `json:"env" validate:"required"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
	HTTPTimeout     time.Duration `json:"http_timeout" validate:"gt=0"`

	// Content platform
	SanityProjectID  string `json:"sanity_project_id" validate:"required,alphanum"`
	SanityDataset    string `json:"sanity_dataset" validate:"required"`
	SanityAPIVersion string `json:"sanity_api_version" validate:"required,datetime=2006-01-02"`
	SanityUseCDN     bool   `json:"sanity_use_cdn"`
	SanityToken      string `json:"-"`

	// Customer 360 project, queried by the account pages
	Customer360ProjectID string `json:"customer360_project_id" validate:"omitempty,alphanum"`
	Customer360Dataset   string `json:"customer360_dataset"`

	// Redis configuration. An empty URL disables the response cache.
	RedisURL    string        `json:"redis_url" validate:"omitempty,url"`
	RedisPrefix string        `json:"redis_prefix"`
	CacheTTL    time.Duration `json:"cache_ttl" validate:"gte=0"`

	// Logging
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error fatal panic disabled"`
	LogFile  string `json:"log_file"`

	// Security
	AdminAPIKey string `json:"-"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := FromEnv()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// FromEnv builds a Config from the process environment without validating it.
func FromEnv() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		SanityProjectID:  getEnv("SANITY_PROJECT_ID", "67rpxlqi"),
		SanityDataset:    getEnv("SANITY_DATASET", "production"),
		SanityAPIVersion: strings.TrimPrefix(getEnv("SANITY_API_VERSION", "2024-01-01"), "v"),
		SanityUseCDN:     getEnvAsBool("SANITY_USE_CDN", false),
		SanityToken:      getEnv("SANITY_TOKEN", ""),

		Customer360ProjectID: getEnv("CUSTOMER360_PROJECT_ID", "hzao7xsp"),
		Customer360Dataset:   getEnv("CUSTOMER360_DATASET", "production"),

		RedisURL:    getEnv("REDIS_URL", ""),
		RedisPrefix: getEnv("REDIS_PREFIX", "atlas:"),
		CacheTTL:    getEnvAsDuration("CACHE_TTL", 5*time.Minute),

		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:  getEnv("LOG_FILE", ""),

		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// CacheEnabled reports whether CMS responses should be cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" && c.CacheTTL > 0
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
