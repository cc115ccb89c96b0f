package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/require"
)

const testConfig = `env: "local"

http:
  port: 8081

postgres:
  port: "5432"
  host: "localhost"
  db_name: "payments"
  user: "postgres"
  password: "postgres"
  sslmode: "disable"

kafka:
  broker_list:
    - "localhost:9092"
  order_event_topic: "orders"
  payment_event_topic: "payments"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, testConfig)

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, 8081, cfg.HTTP.Port)
	require.Equal(t, "payments", cfg.Postgres.DbName)
	require.Equal(t, []string{"localhost:9092"}, cfg.Kafka.BrokerList)
	require.Equal(t, "orders", cfg.Kafka.OrderEventTopic)
}

func TestReadConfigDefaults(t *testing.T) {
	path := writeConfig(t, testConfig)

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	require.Equal(t, "dead-letter", cfg.Kafka.DeadLetterTopic)
	require.Equal(t, "payment-group", cfg.Kafka.PaymentGroup)
	require.Equal(t, "notification-group", cfg.Kafka.NotificationGroup)
	require.Equal(t, 5, cfg.Kafka.MaxAttempts)
	require.Equal(t, 2*time.Second, cfg.Kafka.RetryBackoff)
	require.Equal(t, 5*time.Second, cfg.Kafka.OutboxInterval)

	require.Equal(t, 128, cfg.Cache.PaymentSize)
	require.Equal(t, 10*time.Minute, cfg.Cache.PaymentTTL)

	require.Equal(t, "CREDIT_CARD", cfg.Defaults.PaymentMethod)
	require.Equal(t, "customer@example.com", cfg.Defaults.FallbackEmail)
}
