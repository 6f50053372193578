package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/timeconv"
)

const (
	StoreMongoDB = "mongodb"
	StoreMemory  = "memory"
)

type Config struct {
	Port                   string
	StoreDriver            string
	MongoDBURI             string
	MongoDBPassword        string
	MongoDBDatabase        string
	Environment            string
	LogLevel               string
	AllowedOrigins         []string
	DefaultProfileTimezone string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                   getEnvWithDefault("PORT", "8080"),
		StoreDriver:            strings.ToLower(getEnvWithDefault("STORE_DRIVER", StoreMongoDB)),
		MongoDBURI:             os.Getenv("MONGODB_URI"),
		MongoDBPassword:        os.Getenv("MONGODB_PASSWORD"),
		MongoDBDatabase:        getEnvWithDefault("MONGODB_DATABASE", "tzscheduler"),
		Environment:            getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:               getEnvWithDefault("LOG_LEVEL", "info"),
		AllowedOrigins:         splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		DefaultProfileTimezone: getEnvWithDefault("DEFAULT_PROFILE_TIMEZONE", models.DefaultTimezone),
	}

	switch cfg.StoreDriver {
	case StoreMongoDB:
		if cfg.MongoDBURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required")
		}
	case StoreMemory:
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMongoDB, StoreMemory, cfg.StoreDriver)
	}

	if _, err := timeconv.LoadZone(cfg.DefaultProfileTimezone); err != nil {
		return nil, fmt.Errorf("DEFAULT_PROFILE_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// MongoURI returns the connection string with any <password> placeholder
// filled in.
func (c *Config) MongoURI() string {
	if c.MongoDBPassword == "" {
		return c.MongoDBURI
	}
	return strings.Replace(c.MongoDBURI, "<password>", c.MongoDBPassword, 1)
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
