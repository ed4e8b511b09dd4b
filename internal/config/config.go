package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service
	HTTPPort int `env:"HTTP_PORT" default:"3000"`

	// Database. A DSN containing "postgres" selects the postgres driver,
	// anything else is treated as a sqlite file path.
	DatabaseURL string `env:"DATABASE_URL" default:"gapod.db"`

	// Retention
	RetentionWindow time.Duration `env:"RETENTION_WINDOW" default:"120h"`
	SweepInterval   time.Duration `env:"SWEEP_INTERVAL" default:"1h"`

	// Rate limiting (writes only)
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" default:"1"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" default:"10"`

	// Development
	LogLevel    string   `env:"LOG_LEVEL" default:"info"`
	LogFormat   string   `env:"LOG_FORMAT" default:"text"`
	CORSOrigins []string `env:"CORS_ORIGINS" default:"*"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional; system env vars always work.
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}

	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 3000); err != nil {
		return nil, err
	}

	if err := loadEnvString(&config.DatabaseURL, "DATABASE_URL", "gapod.db"); err != nil {
		return nil, err
	}

	if err := loadEnvDuration(&config.RetentionWindow, "RETENTION_WINDOW", 120*time.Hour); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.SweepInterval, "SWEEP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}

	if err := loadEnvFloat(&config.RateLimitRPS, "RATE_LIMIT_RPS", 1); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RateLimitBurst, "RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}

	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "info"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "text"); err != nil {
		return nil, err
	}
	if err := loadEnvStringSlice(&config.CORSOrigins, "CORS_ORIGINS", []string{"*"}); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvFloat(target *float64, key string, defaultValue float64) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringSlice(target *[]string, key string, defaultValue []string) error {
	if value := os.Getenv(key); value != "" {
		*target = strings.Split(value, ",")
		for i, v := range *target {
			(*target)[i] = strings.TrimSpace(v)
		}
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}

	if c.RetentionWindow <= 0 {
		errors = append(errors, "RETENTION_WINDOW must be positive")
	}
	// A SweepInterval of 0 disables the in-process sweeper; negatives are typos.
	if c.SweepInterval < 0 {
		errors = append(errors, "SWEEP_INTERVAL must not be negative")
	}

	if c.RateLimitRPS <= 0 {
		errors = append(errors, "RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "RATE_LIMIT_BURST must be at least 1")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
