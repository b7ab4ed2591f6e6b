package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "localhost",
		User:     "ops",
		Password: "secret",
		DBName:   "dispatcher",
		Port:     "5432",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost user=ops password=secret dbname=dispatcher port=5432 sslmode=disable",
		cfg.DSN(),
	)
}

func TestConnectRedisWithRetry_GivesUp(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	rdb, err := ConnectRedisWithRetry("127.0.0.1:1", 2)

	assert.Nil(t, rdb)
	assert.ErrorContains(t, err, "after 2 retries")
}
