package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	vars := map[string]string{
		"BOARDHUB_PRIMARY.ENV":                 "development",
		"BOARDHUB_SERVER.PORT":                 "8080",
		"BOARDHUB_SERVER.READ_TIMEOUT":         "30",
		"BOARDHUB_SERVER.WRITE_TIMEOUT":        "30",
		"BOARDHUB_SERVER.IDLE_TIMEOUT":         "60",
		"BOARDHUB_SERVER.CORS_ALLOWED_ORIGINS": "http://localhost:3000,http://localhost:5173",
		"BOARDHUB_DATABASE.HOST":               "localhost",
		"BOARDHUB_DATABASE.PORT":               "5432",
		"BOARDHUB_DATABASE.USER":               "postgres",
		"BOARDHUB_DATABASE.PASSWORD":           "postgres",
		"BOARDHUB_DATABASE.NAME":               "boardhub",
		"BOARDHUB_DATABASE.SSL_MODE":           "disable",
		"BOARDHUB_DATABASE.MAX_OPEN_CONNS":     "25",
		"BOARDHUB_DATABASE.MAX_IDLE_CONNS":     "25",
		"BOARDHUB_DATABASE.CONN_MAX_LIFETIME":  "300",
		"BOARDHUB_DATABASE.CONN_MAX_IDLE_TIME": "300",
		"BOARDHUB_REDIS.ADDRESS":               "localhost:6379",
		"BOARDHUB_INTEGRATION.RESEND_API_KEY":  "re_test",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, DefaultEmailFrom, cfg.Integration.EmailFrom)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.True(t, cfg.Observability.HealthCheckEnabled("database"))
	assert.False(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_ListValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOARDHUB_SERVER.CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOARDHUB_DATABASE.HOST", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Host")
}

func TestLoadConfig_AuthEnabledRequiresSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOARDHUB_AUTH.ENABLED", "true")

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("BOARDHUB_AUTH.SECRET_KEY", "sk_test")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Enabled)
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "trace"
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestObservabilityConfig_HealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.HealthChecks.Checks = []string{"database"}

	assert.True(t, cfg.HealthCheckEnabled("database"))
	assert.False(t, cfg.HealthCheckEnabled("redis"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("database"))
}
