package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BMarcano/dispatcher/internal/shared/connection"

	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"

	defaultPort         = "3000"
	defaultPollInterval = 3 * time.Second
)

// Config centralises all environment and runtime configuration.
type Config struct {
	Port               string
	AppEnv             string
	Postgres           connection.PostgresConfig
	RedisAddr          string
	KafkaBroker        string
	JWTSecret          string
	CORSAllowedOrigins []string
	AutoMigrate        bool
	OutboxPollInterval time.Duration
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if val := strings.TrimSpace(getenv(key)); val != "" {
			return val
		}
		return def
	}

	cfg := Config{
		Port:   get("PORT", defaultPort),
		AppEnv: get("APP_ENV", "development"),
		Postgres: connection.PostgresConfig{
			Host:     get("DB_HOST", "localhost"),
			User:     get("DB_USER", "postgres"),
			Password: getenv("DB_PASSWORD"),
			DBName:   get("DB_NAME", "dispatcher"),
			Port:     get("DB_PORT", "5432"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
		RedisAddr:          get("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:        get("KAFKA_BROKER", ""),
		JWTSecret:          get("JWT_SECRET", ""),
		CORSAllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		AutoMigrate:        parseBoolEnv(getenv("AUTO_MIGRATE")),
		OutboxPollInterval: defaultPollInterval,
	}

	if raw := get("OUTBOX_POLL_INTERVAL", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("OUTBOX_POLL_INTERVAL %q is not a positive duration", raw)
		}
		cfg.OutboxPollInterval = d
	}

	return cfg, nil
}

// RequireJWTSecret is used by the HTTP API, which signs and verifies tokens.
func (c Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("environment variable JWT_SECRET is required but not set")
	}
	return nil
}

// RequireKafka is used by the processes that talk to the broker.
func (c Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return fmt.Errorf("environment variable KAFKA_BROKER is required but not set")
	}
	return nil
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

func parseBoolEnv(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}
