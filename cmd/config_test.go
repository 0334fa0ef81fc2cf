package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ordering/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"STORAGE", "NOTIFIER", "KAFKA_BROKERS", "KAFKA_ORDER_EVENTS_TOPIC", "RABBITMQ_URL",
	"RABBITMQ_EXCHANGE", "PAYMENT_EXPIRY_TTL", "PAYMENT_EXPIRY_SCHEDULE", "LOG_LEVEL", "MIGRATIONS_PATH",
}

// clearEnv unsets every config variable for the duration of the test. t.Setenv
// registers the restore, so the variable can then be removed.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, cmd.StoragePostgres, config.Storage)
	assert.Equal(t, cmd.NotifierLog, config.Notifier)
	assert.Equal(t, []string{"localhost:9092"}, config.KafkaBrokers)
	assert.Equal(t, 30*time.Minute, config.PaymentExpiryTTL)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
	assert.Equal(t, "file://migrations", config.MigrationsPath)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "HTTP_PORT=9090\n" +
		"STORAGE=Memory\n" +
		"NOTIFIER=kafka\n" +
		"KAFKA_BROKERS=kafka-1:9092, kafka-2:9092 ,\n" +
		"PAYMENT_EXPIRY_TTL=45m\n" +
		"LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	config, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, cmd.StorageMemory, config.Storage)
	assert.Equal(t, cmd.NotifierKafka, config.Notifier)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.KafkaBrokers)
	assert.Equal(t, 45*time.Minute, config.PaymentExpiryTTL)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "mongo")
	t.Setenv("NOTIFIER", "sms")
	t.Setenv("PAYMENT_EXPIRY_TTL", "soon")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE")
	assert.Contains(t, err.Error(), "NOTIFIER")
	assert.Contains(t, err.Error(), "PAYMENT_EXPIRY_TTL")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestConfig_PostgresDSN(t *testing.T) {
	config := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "ordering",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=ordering sslmode=disable", config.PostgresDSN())
}
