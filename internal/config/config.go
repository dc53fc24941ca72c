package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const DefaultDemoUserID = "00000000-0000-0000-0000-000000009999"

type Config struct {
	API     APIConfig
	Session SessionConfig
	Server  ServerConfig
	Log     LogConfig
	SignUp  SignUpConfig

	// DemoUserID scopes the saved-itinerary holder until real accounts are wired.
	DemoUserID uuid.UUID
}

type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

type SessionConfig struct {
	Driver        string // memory, sqlite or postgres
	DSN           string
	EncryptionKey []byte
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

type SignUpConfig struct {
	FlowTTL         time.Duration
	LinkConcurrency int
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnvWithDefault("API_BASE_URL", "http://localhost:8080"), "/"),
		},
		Session: SessionConfig{
			Driver: strings.ToLower(getEnvWithDefault("SESSION_DRIVER", "sqlite")),
			DSN:    getEnvWithDefault("SESSION_DSN", "accessitrip-session.db"),
		},
		Server: ServerConfig{
			Port:           getEnvWithDefault("PORT", "8090"),
			AllowedOrigins: splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level:  getEnvWithDefault("LOG_LEVEL", "info"),
			Format: getEnvWithDefault("LOG_FORMAT", "text"),
		},
	}

	var err error
	if cfg.API.Timeout, err = time.ParseDuration(getEnvWithDefault("API_TIMEOUT", "15s")); err != nil {
		return nil, fmt.Errorf("API_TIMEOUT: %w", err)
	}
	if cfg.API.RateLimit, err = strconv.ParseFloat(getEnvWithDefault("API_RATE_LIMIT", "0"), 64); err != nil {
		return nil, fmt.Errorf("API_RATE_LIMIT: %w", err)
	}
	if cfg.API.RateBurst, err = strconv.Atoi(getEnvWithDefault("API_RATE_BURST", "1")); err != nil {
		return nil, fmt.Errorf("API_RATE_BURST: %w", err)
	}

	switch cfg.Session.Driver {
	case "memory", "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("SESSION_DRIVER: unsupported driver %q", cfg.Session.Driver)
	}
	if raw := os.Getenv("SESSION_ENCRYPTION_KEY"); raw != "" {
		key, err := hex.DecodeString(raw)
		if err != nil || len(key) != 32 {
			return nil, fmt.Errorf("SESSION_ENCRYPTION_KEY: want 64 hex characters")
		}
		cfg.Session.EncryptionKey = key
	}

	if cfg.DemoUserID, err = uuid.Parse(getEnvWithDefault("DEMO_USER_ID", DefaultDemoUserID)); err != nil {
		return nil, fmt.Errorf("DEMO_USER_ID: %w", err)
	}

	if cfg.SignUp.FlowTTL, err = time.ParseDuration(getEnvWithDefault("SIGNUP_FLOW_TTL", "30m")); err != nil {
		return nil, fmt.Errorf("SIGNUP_FLOW_TTL: %w", err)
	}
	if cfg.SignUp.LinkConcurrency, err = strconv.Atoi(getEnvWithDefault("SIGNUP_LINK_CONCURRENCY", "4")); err != nil {
		return nil, fmt.Errorf("SIGNUP_LINK_CONCURRENCY: %w", err)
	}
	if cfg.SignUp.LinkConcurrency < 1 {
		cfg.SignUp.LinkConcurrency = 1
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
