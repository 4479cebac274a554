package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "v1", cfg.APIVersion)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "booking-events", cfg.Kafka.BookingTopic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.NotEmpty(t, cfg.Database.DSN)
	assert.Contains(t, cfg.Database.DSN, "host=")
	assert.Equal(t, cfg.Redis.Host+":"+cfg.Redis.Port, cfg.Redis.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WINDOW_DURATION", "30s")
	t.Setenv("DB_NAME", "bookly_test")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.WindowDuration)
	assert.Contains(t, cfg.Database.DSN, "dbname=bookly_test")
}

func TestGetAPIBasePath(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
}

func TestModeHelpers(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
