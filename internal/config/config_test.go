package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{"JWT_SECRET": "s3cret"}))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsProduction())
	assert.NoError(t, cfg.RequireJWTSecret())
	assert.Error(t, cfg.RequireKafka())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"JWT_SECRET":           "s3cret",
		"PORT":                 "8080",
		"APP_ENV":              "production",
		"DB_HOST":              "db",
		"KAFKA_BROKER":         "kafka:9092",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example ,",
		"AUTO_MIGRATE":         "yes",
		"OUTBOX_POLL_INTERVAL": "500ms",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.NoError(t, cfg.RequireKafka())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 500*time.Millisecond, cfg.OutboxPollInterval)
}

func TestFromEnv_MissingSecret(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{}))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.RequireJWTSecret(), "JWT_SECRET")
}

func TestFromEnv_BadPollInterval(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{"JWT_SECRET": "x", "OUTBOX_POLL_INTERVAL": "soon"}))
	assert.ErrorContains(t, err, "OUTBOX_POLL_INTERVAL")
}

func TestParseBoolEnv(t *testing.T) {
	for _, v := range []string{"1", "true", "ON", " y "} {
		assert.True(t, parseBoolEnv(v), v)
	}
	for _, v := range []string{"", "0", "false", "nope"} {
		assert.False(t, parseBoolEnv(v), v)
	}
}
